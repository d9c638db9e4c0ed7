package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherCoalescesWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "player.yaml")
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("speed: 1\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "player.yaml" {
			t.Fatalf("unexpected change %q", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("no change reported")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("burst reported twice, got %q", name)
	case <-time.After(3 * Settle):
	}
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatalf("events still open after Close")
	}
	_ = w.Close()
}
