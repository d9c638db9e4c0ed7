// Package progress remembers how far the player got between runs.
package progress

import (
	"fmt"
	"log"
	"slices"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	progressObject   = "progress"
	progressProperty = "state"
)

// State is the persisted progress.
type State struct {
	// Level is the level to resume from.
	Level     string   `yaml:"level"`
	Completed []string `yaml:"completed"`
}

// Store persists State through gdata. A nil manager keeps progress in memory
// only, for platforms where gdata cannot open a data directory.
type Store struct {
	manager *gdata.Manager
	state   State
}

// Open opens the gdata directory of appName. Failing to open it is not fatal.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("progress: gdata unavailable (%v), progress will not be saved", err)
		m = nil
	}
	s, err := NewStore(m)
	if err != nil {
		log.Printf("progress: %v (starting fresh)", err)
	}
	return s
}

// NewStore loads the saved state from m. On error the store is still usable
// and starts from an empty state.
func NewStore(m *gdata.Manager) (*Store, error) {
	s := &Store{manager: m}
	return s, s.Load()
}

func (s *Store) Load() error {
	s.state = State{}
	if s.manager == nil || !s.manager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("progress: load: %w", err)
	}
	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("progress: decode: %w", err)
	}
	s.state = st
	return nil
}

func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("progress: encode: %w", err)
	}
	if err := s.manager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("progress: save: %w", err)
	}
	return nil
}

func (s *Store) State() State { return s.state }

// Complete records that level was finished and that next is where to resume.
func (s *Store) Complete(level, next string) error {
	if level != "" && !slices.Contains(s.state.Completed, level) {
		s.state.Completed = append(s.state.Completed, level)
	}
	s.state.Level = next
	return s.Save()
}

// Reset forgets all progress.
func (s *Store) Reset() error {
	s.state = State{}
	return s.Save()
}
