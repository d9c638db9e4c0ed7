package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/blockdrop/progress"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug drawing and prefab hot reload")
	levelName := flag.String("level", "", "level name in levels/ (basename, .yaml optional)")
	reset := flag.Bool("reset", false, "forget saved progress")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	store := progress.Open("blockdrop")
	if *reset {
		if err := store.Reset(); err != nil {
			log.Printf("progress: reset: %v", err)
		}
	}

	game, err := NewGame(Options{Level: *levelName, Debug: *debug, Mute: *mute, Progress: store})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("blockdrop")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
