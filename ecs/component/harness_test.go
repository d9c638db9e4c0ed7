package component

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/physics/physicstest"
)

type testControls struct {
	move   int
	jump   bool
	action bool
}

func (c *testControls) MoveX() int   { return c.move }
func (c *testControls) Jump() bool   { return c.jump }
func (c *testControls) Action() bool { return c.action }

// harness runs a world tick in game order against the scripted engine and
// records the events it produced.
type harness struct {
	t      *testing.T
	w      *ecs.World
	engine *physicstest.World
	floor  *physicstest.Body

	sounds []SoundRequest
	levels []LevelChange
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{t: t, w: ecs.NewWorld(), engine: physicstest.NewWorld()}
	h.floor = h.engine.NewBody(cp.Vector{X: 0, Y: 10000}, cp.Vector{X: 100000, Y: 3200}, true)
	h.floor.AddGroups(GroupSolid)
	return h
}

func (h *harness) tick() {
	h.engine.Update(1)
	ecs.ForEach(h.w, PhysicsComponent.Kind(), func(_ ecs.Entity, p *Physics) { p.Update(1) })
	ecs.ForEach(h.w, BlockComponent.Kind(), func(_ ecs.Entity, b *Block) { b.Update(1) })
	ecs.ForEach(h.w, PlayerComponent.Kind(), func(_ ecs.Entity, p *Player) { p.Update(1) })
	ecs.ForEach(h.w, PlayerAnimationComponent.Kind(), func(_ ecs.Entity, a *PlayerAnimation) { a.Update(1) })
	ecs.ForEach(h.w, CountdownComponent.Kind(), func(_ ecs.Entity, c *Countdown) {
		if c.Tick(1) {
			RequestLevelChange(h.w, LevelRestart)
		}
	})
	h.drain()
	ecs.Refresh(h.w)
}

func (h *harness) drain() {
	for _, evt := range h.w.Events().Drain() {
		switch data := evt.Data.(type) {
		case SoundRequest:
			h.sounds = append(h.sounds, data)
		case LevelChangeRequest:
			h.levels = append(h.levels, data.Change)
		}
	}
}

func (h *harness) soundCount(name string) int {
	n := 0
	for _, s := range h.sounds {
		if s.Name == name {
			n++
		}
	}
	return n
}

func (h *harness) physics(static bool, pos, size cp.Vector) (ecs.Entity, *Physics, *physicstest.Body) {
	h.t.Helper()
	e := ecs.CreateEntity(h.w)
	p := NewPhysics(h.engine, e, static, pos, size, DefaultPhysicsSettings)
	if err := ecs.Add(h.w, e, PhysicsComponent.Kind(), p); err != nil {
		h.t.Fatalf("add physics: %v", err)
	}
	return e, p, p.Body().(*physicstest.Body)
}

func (h *harness) block(pos cp.Vector, value int, pickable bool) (ecs.Entity, *Block, *physicstest.Body) {
	h.t.Helper()
	e, p, body := h.physics(false, pos, cp.Vector{X: 1600, Y: 1600})
	body.AddGroups(GroupSolid | GroupBlock)
	if pickable {
		body.AddGroups(GroupCanBePicked)
	}
	body.AddGroupsToCheck(GroupSolid)
	body.AddGroupsNoResolve(GroupBlockFloating)

	b := NewBlock(h.w, e, p, value)
	if err := ecs.Add(h.w, e, BlockComponent.Kind(), b); err != nil {
		h.t.Fatalf("add block: %v", err)
	}
	if err := ecs.Add(h.w, e, BlockTagComponent.Kind(), &BlockTag{}); err != nil {
		h.t.Fatalf("add block tag: %v", err)
	}
	return e, b, body
}

func (h *harness) player(pos cp.Vector, ctl Controls) (ecs.Entity, *Player, *physicstest.Body) {
	h.t.Helper()
	e, p, body := h.physics(false, pos, cp.Vector{X: 800, Y: 2700})
	body.AddGroups(GroupSolid | GroupPlayer)
	body.AddGroupsToCheck(GroupSolid)
	body.AddGroupsNoResolve(GroupBlockFloating)

	pl := NewPlayer(h.w, e, p, ctl, DefaultPlayerSettings)
	if err := ecs.Add(h.w, e, PlayerComponent.Kind(), pl); err != nil {
		h.t.Fatalf("add player: %v", err)
	}
	return e, pl, body
}

func (h *harness) countdown() *Countdown {
	h.t.Helper()
	e := ecs.CreateEntity(h.w)
	c := NewCountdown(CountdownTicks)
	if err := ecs.Add(h.w, e, CountdownComponent.Kind(), c); err != nil {
		h.t.Fatalf("add countdown: %v", err)
	}
	return c
}

// ground keeps p's ground sensor overlapping the floor.
func (h *harness) ground(p *Physics) {
	h.engine.Overlap(p.GroundSensor().Engine().(*physicstest.Sensor), h.floor)
}

func (h *harness) unground(p *Physics) {
	h.engine.Separate(p.GroundSensor().Engine().(*physicstest.Sensor), h.floor)
}

func pickupSensor(pl *Player) *physicstest.Sensor {
	return pl.PickupSensor().Engine().(*physicstest.Sensor)
}
