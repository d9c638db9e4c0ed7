package component

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/physics/physicstest"
)

func (h *harness) receiver(value int) (*Receiver, *physicstest.Body) {
	h.t.Helper()
	e, p, body := h.physics(true, cp.Vector{X: 6400}, cp.Vector{X: 3200, Y: 3200})
	r := NewReceiver(h.w, p, value)
	if err := ecs.Add(h.w, e, ReceiverComponent.Kind(), r); err != nil {
		h.t.Fatalf("add receiver: %v", err)
	}
	return r, body
}

func TestReceiverSetup(t *testing.T) {
	h := newHarness(t)
	r, body := h.receiver(2)
	if body.Resolves() || !body.HasGroup(GroupReceiver) || !body.GroupsToCheck().Has(GroupBlock) {
		t.Fatalf("receiver body misconfigured")
	}
	if r.Value() != 2 {
		t.Fatalf("value = %d", r.Value())
	}
}

func TestReceiverConsumesMatchingBlocks(t *testing.T) {
	tests := []struct {
		name     string
		receiver int
		block    int
		consumed bool
	}{
		{name: "same value", receiver: 3, block: 3, consumed: true},
		{name: "other value", receiver: 3, block: 1, consumed: false},
		{name: "wildcard", receiver: -1, block: 7, consumed: true},
		{name: "wildcard block is not a wildcard receiver", receiver: 2, block: -1, consumed: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			c := h.countdown()
			c.Start()
			c.Remaining = 5
			_, rb := h.receiver(tt.receiver)
			e, _, bb := h.block(cp.Vector{X: 6400}, tt.block, true)

			h.engine.Detect(rb, bb)
			h.tick()
			if ecs.IsAlive(h.w, e) == tt.consumed {
				t.Fatalf("alive = %v, consumed want %v", ecs.IsAlive(h.w, e), tt.consumed)
			}
			wantSounds := 0
			if tt.consumed {
				wantSounds = 1
			}
			if n := h.soundCount(SoundRecv); n != wantSounds {
				t.Fatalf("recv sounds = %d, want %d", n, wantSounds)
			}
			if tt.consumed && c.Remaining != c.Duration-1 {
				t.Fatalf("countdown not refreshed: remaining %v", c.Remaining)
			}
		})
	}
}

func TestReceiverConsumesOnce(t *testing.T) {
	h := newHarness(t)
	_, first := h.receiver(-1)
	_, second := h.receiver(-1)
	e, _, bb := h.block(cp.Vector{X: 6400}, 0, true)

	h.engine.Detect(first, bb)
	h.engine.Detect(second, bb)
	h.tick()
	if ecs.IsAlive(h.w, e) {
		t.Fatalf("block survived")
	}
	if n := h.soundCount(SoundRecv); n != 1 {
		t.Fatalf("recv sounds = %d, a doomed block must not be consumed twice", n)
	}
}

func TestReceiverIgnoresNonBlocks(t *testing.T) {
	h := newHarness(t)
	_, rb := h.receiver(-1)
	e, _, body := h.player(cp.Vector{X: 6400}, &testControls{})

	h.engine.Detect(rb, body)
	h.tick()
	if !ecs.IsAlive(h.w, e) {
		t.Fatalf("receiver consumed the player")
	}
}

func (h *harness) teleporter() (*Teleporter, *physicstest.Body) {
	h.t.Helper()
	e, p, body := h.physics(true, cp.Vector{X: -6400}, cp.Vector{X: 3200, Y: 3200})
	tp := NewTeleporter(h.w, p)
	if err := ecs.Add(h.w, e, TeleporterComponent.Kind(), tp); err != nil {
		h.t.Fatalf("add teleporter: %v", err)
	}
	return tp, body
}

func TestTeleporterWaitsForBlocks(t *testing.T) {
	h := newHarness(t)
	tp, tb := h.teleporter()
	_, _, pb := h.player(cp.Vector{X: -6400}, &testControls{})
	be, _, _ := h.block(cp.Vector{}, 0, true)

	h.engine.Detect(tb, pb)
	h.tick()
	if tp.Triggered() || len(h.levels) != 0 {
		t.Fatalf("teleported with a block left")
	}

	ecs.DestroyEntity(h.w, be)
	ecs.Refresh(h.w)
	h.engine.Detect(tb, pb)
	h.tick()
	if !tp.Triggered() || len(h.levels) != 1 || h.levels[0] != LevelNext {
		t.Fatalf("levels = %v, want [next]", h.levels)
	}
	if h.soundCount(SoundTele) != 1 {
		t.Fatalf("tele sound missing")
	}

	h.engine.Detect(tb, pb)
	h.tick()
	if len(h.levels) != 1 {
		t.Fatalf("teleporter fired twice")
	}
}

func TestTeleporterIgnoresBlocks(t *testing.T) {
	h := newHarness(t)
	tp, tb := h.teleporter()
	_, _, ob := h.physics(false, cp.Vector{}, cp.Vector{X: 1600, Y: 1600})
	ob.AddGroups(GroupBlock)

	h.engine.Detect(tb, ob)
	h.tick()
	if tp.Triggered() {
		t.Fatalf("non-player body triggered the teleporter")
	}
}

func TestCountdownTick(t *testing.T) {
	c := NewCountdown(0)
	if c.Duration != CountdownTicks {
		t.Fatalf("duration = %v", c.Duration)
	}
	if c.Tick(1) {
		t.Fatalf("idle countdown expired")
	}

	c = NewCountdown(3)
	c.Start()
	c.Tick(2)
	c.Start()
	if c.Remaining != 1 {
		t.Fatalf("Start restarted a running countdown: remaining %v", c.Remaining)
	}
	c.Refresh()
	if c.Remaining != 3 {
		t.Fatalf("refresh: remaining %v", c.Remaining)
	}
	if c.Tick(2) || !c.Tick(1) {
		t.Fatalf("expiry not on the third tick")
	}
	if c.Running() || c.Remaining != 0 {
		t.Fatalf("expired countdown still running")
	}
}

func TestCountdownRestartsLevel(t *testing.T) {
	h := newHarness(t)
	c := h.countdown()
	c.Duration, c.Remaining = 10, 10
	StartCountdown(h.w)

	for i := 0; i < 9; i++ {
		h.tick()
	}
	if len(h.levels) != 0 {
		t.Fatalf("expired early")
	}
	h.tick()
	if len(h.levels) != 1 || h.levels[0] != LevelRestart {
		t.Fatalf("levels = %v, want [restart]", h.levels)
	}
}

func TestCountdownHelpersWithoutCountdown(t *testing.T) {
	h := newHarness(t)
	StartCountdown(h.w)
	RefreshCountdown(h.w)
}

func TestLiftMovesAtDoubleVelocity(t *testing.T) {
	h := newHarness(t)
	_, p, body := h.physics(false, cp.Vector{}, cp.Vector{X: 3200, Y: 800})
	l := NewLift(p, cp.Vector{Y: -50})

	h.tick()
	if p.IsAffectedByGravity() {
		t.Fatalf("lift affected by gravity")
	}
	if got := body.Position(); got != (cp.Vector{Y: -100}) {
		t.Fatalf("position = %v, want (0,-100)", got)
	}
	l.Velocity = cp.Vector{X: 10}
	h.tick()
	if got := body.Position(); got != (cp.Vector{X: 20, Y: -100}) {
		t.Fatalf("position = %v after changing velocity", got)
	}
}
