package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/blockdrop/assets"
	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/ecs/component"
	"github.com/milk9111/blockdrop/ecs/entity"
	"github.com/milk9111/blockdrop/ecs/render"
	"github.com/milk9111/blockdrop/ecs/system"
	"github.com/milk9111/blockdrop/levels"
	"github.com/milk9111/blockdrop/physics/chipmunk"
	"github.com/milk9111/blockdrop/prefabs"
	"github.com/milk9111/blockdrop/progress"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Options struct {
	Level    string
	Debug    bool
	Mute     bool
	Progress *progress.Store
}

// Game runs one level at a time. Level changes requested during a tick are
// applied after the world finished updating.
type Game struct {
	debug    bool
	names    []string
	current  int
	progress *progress.Store

	cfg      *entity.Config
	world    *ecs.World
	space    *chipmunk.Space
	input    *Input
	sounds   *assets.SoundBank
	renderer *render.Renderer
	view     render.View

	pending []component.LevelChange
	watcher *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	names := levels.Names()
	if len(names) == 0 {
		return nil, fmt.Errorf("game: no levels")
	}

	g := &Game{
		debug:    opts.Debug,
		names:    names,
		progress: opts.Progress,
		input:    NewInput(),
		sounds:   assets.NewSoundBank(nil),
		renderer: render.NewRenderer(),
	}
	g.sounds.SetMuted(opts.Mute)

	start := opts.Level
	if start == "" && g.progress != nil {
		start = g.progress.State().Level
	}
	g.current = g.indexOf(start)

	if err := g.reloadConfig(); err != nil {
		return nil, err
	}
	render.LoadSheets(g.cfg.CharTileset())
	if err := g.load(g.current); err != nil {
		return nil, err
	}

	if g.debug {
		g.startWatcher()
	}
	return g, nil
}

func (g *Game) indexOf(name string) int {
	if name != "" && !strings.HasSuffix(name, ".yaml") {
		name += ".yaml"
	}
	for i, n := range g.names {
		if n == name {
			return i
		}
	}
	if name != "" {
		log.Printf("Game: unknown level %q, starting from %q", name, g.names[0])
	}
	return 0
}

func (g *Game) reloadConfig() error {
	cfg, err := entity.LoadConfig()
	if err != nil {
		return fmt.Errorf("game: load config: %w", err)
	}
	g.cfg = cfg
	return nil
}

// load replaces the world with level idx. The current world keeps running
// when the level fails to build.
func (g *Game) load(idx int) error {
	lvl, err := levels.LoadLevel(g.names[idx])
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	space := chipmunk.NewSpace()
	if g.cfg.StressScale > 0 {
		space.StressScale = g.cfg.StressScale
	}

	events := system.NewEventSystem()
	events.Handle(component.EventSound, system.AudioHandler(g.sounds))
	events.Handle(component.EventLevel, system.LevelHandler(func(c component.LevelChange) {
		g.pending = append(g.pending, c)
	}))
	world, err := entity.NewLevelWorld(space, g.cfg, lvl, g.input, append(system.Gameplay(space), events)...)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	if g.world != nil {
		ecs.Clear(g.world)
	}
	w, h := lvl.Size()
	g.view = render.FitView(float64(w)*entity.TileSize, float64(h)*entity.TileSize, baseWidth, baseHeight)
	g.world, g.space, g.current = world, space, idx
	g.pending = nil
	return nil
}

func (g *Game) Update() error {
	g.input.Update()
	if g.input.debug {
		g.debug = !g.debug
	}
	g.pollWatcher()
	if g.input.restart {
		g.pending = append(g.pending, component.LevelRestart)
	}

	if len(g.pending) == 0 {
		g.world.Update(1)
	}
	return g.applyPending()
}

// applyPending handles the first level change of the tick. Advancing wins
// over a restart requested in the same tick.
func (g *Game) applyPending() error {
	if len(g.pending) == 0 {
		return nil
	}
	change := component.LevelRestart
	for _, c := range g.pending {
		if c == component.LevelNext {
			change = c
		}
	}
	g.pending = nil

	next := g.current
	if change == component.LevelNext {
		next = (g.current + 1) % len(g.names)
		if next == 0 {
			log.Printf("Game: all %d levels complete", len(g.names))
		}
		if g.progress != nil {
			if err := g.progress.Complete(g.names[g.current], g.names[next]); err != nil {
				log.Printf("Game: %v", err)
			}
		}
	}
	log.Printf("Game: %s -> %q", change, g.names[next])
	return g.load(next)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	g.renderer.Draw(g.world, screen, g.view)
	if g.debug {
		render.DrawPhysicsDebug(g.space.Space(), screen, g.view)
		render.DrawPlayerDebug(g.world, screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) startWatcher() {
	var dirs []string
	for _, d := range []string{"prefabs", "levels"} {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			dirs = append(dirs, d)
		}
	}
	if len(dirs) == 0 {
		return
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("Game: hot reload disabled: %v", err)
		return
	}
	g.watcher = w
	log.Printf("Game: watching %s", strings.Join(dirs, ", "))
}

// pollWatcher reloads the prefabs and the current level when a yaml file
// changed on disk.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := ""
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			changed = name
			continue
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("Game: watcher: %v", err)
			}
			continue
		default:
		}
		break
	}
	if changed == "" {
		return
	}

	log.Printf("Game: %s changed, reloading", changed)
	if err := g.reloadConfig(); err != nil {
		log.Printf("Game: %v", err)
		return
	}
	if err := g.load(g.current); err != nil {
		log.Printf("Game: reload: %v", err)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
