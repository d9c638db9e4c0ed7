// Command levelcheck loads every level headlessly, simulates it for a number
// of ticks and reports broken carry state.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/ecs/component"
	"github.com/milk9111/blockdrop/ecs/entity"
	"github.com/milk9111/blockdrop/ecs/system"
	"github.com/milk9111/blockdrop/levels"
	"github.com/milk9111/blockdrop/physics/chipmunk"
)

// wander presses random inputs, switching every few ticks.
type wander struct {
	rng    *rand.Rand
	hold   int
	move   int
	jump   bool
	action bool
}

func (c *wander) step() {
	if c.rng == nil {
		return
	}
	if c.hold > 0 {
		c.hold--
		return
	}
	c.hold = 10 + c.rng.IntN(30)
	c.move = c.rng.IntN(3) - 1
	c.jump = c.rng.IntN(4) == 0
	c.action = c.rng.IntN(2) == 0
}

func (c *wander) MoveX() int   { return c.move }
func (c *wander) Jump() bool   { return c.jump }
func (c *wander) Action() bool { return c.action }

type report struct {
	level      string
	blocks     int
	receivers  int
	walls      int
	remaining  int
	changes    []component.LevelChange
	violations []string
}

func main() {
	ticks := flag.Int("ticks", 600, "ticks to simulate per level")
	seed := flag.Uint64("seed", 0, "random input seed (0 keeps the player idle)")
	only := flag.String("level", "", "check a single level")
	flag.Parse()

	cfg, err := entity.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	names := levels.Names()
	if *only != "" {
		names = []string{*only}
	}

	failed := false
	for _, name := range names {
		r, err := check(cfg, name, *ticks, *seed)
		if err != nil {
			log.Printf("%s: %v", name, err)
			failed = true
			continue
		}
		fmt.Printf("%-24s blocks=%d receivers=%d walls=%d left=%d changes=%v\n",
			r.level, r.blocks, r.receivers, r.walls, r.remaining, r.changes)
		for _, v := range r.violations {
			fmt.Printf("  %s\n", v)
		}
		if len(r.violations) > 0 {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func check(cfg *entity.Config, name string, ticks int, seed uint64) (*report, error) {
	lvl, err := levels.LoadLevel(name)
	if err != nil {
		return nil, err
	}

	space := chipmunk.NewSpace()
	if cfg.StressScale > 0 {
		space.StressScale = cfg.StressScale
	}

	r := &report{level: name}
	events := system.NewEventSystem()
	events.Handle(component.EventLevel, system.LevelHandler(func(c component.LevelChange) {
		r.changes = append(r.changes, c)
	}))

	ctl := &wander{}
	if seed != 0 {
		ctl.rng = rand.New(rand.NewPCG(seed, uint64(len(name))))
	}
	w, err := entity.NewLevelWorld(space, cfg, lvl, ctl, append(system.Gameplay(space), events)...)
	if err != nil {
		return nil, err
	}
	r.blocks = ecs.Count(w, component.BlockComponent.Kind())
	r.receivers = ecs.Count(w, component.ReceiverComponent.Kind())
	r.walls = ecs.Count(w, component.WallTagComponent.Kind())

	for tick := 0; tick < ticks; tick++ {
		ctl.step()
		w.Update(1)
		for _, v := range carryViolations(w) {
			r.violations = append(r.violations, fmt.Sprintf("tick %d: %s", tick, v))
		}
		if len(r.changes) > 0 {
			break
		}
	}
	r.remaining = ecs.Count(w, component.BlockComponent.Kind())
	ecs.Clear(w)
	return r, nil
}

// carryViolations checks that carrier and carried block agree on each other.
func carryViolations(w *ecs.World) []string {
	var out []string
	ecs.ForEach(w, component.BlockComponent.Kind(), func(e ecs.Entity, b *component.Block) {
		if !b.HasParent() {
			return
		}
		p, ok := ecs.Get(w, b.Carrier(), component.PlayerComponent.Kind())
		if !ok {
			out = append(out, fmt.Sprintf("block %v carried by non-player %v", e, b.Carrier()))
			return
		}
		if p.Block() != e {
			out = append(out, fmt.Sprintf("block %v claims carrier %v holding %v", e, b.Carrier(), p.Block()))
		}
	})
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
		if !p.HasBlock() || !ecs.IsAlive(w, p.Block()) {
			return
		}
		b, ok := ecs.Get(w, p.Block(), component.BlockComponent.Kind())
		if !ok {
			out = append(out, fmt.Sprintf("player %v holds non-block %v", e, p.Block()))
			return
		}
		if b.Carrier() != e {
			out = append(out, fmt.Sprintf("player %v holds block %v carried by %v", e, p.Block(), b.Carrier()))
		}
	})
	return out
}
