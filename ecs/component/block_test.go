package component

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/ecs"
)

func TestBlockDroppedClampsVelocity(t *testing.T) {
	tests := []struct {
		name   string
		vel    cp.Vector
		hBoost float64
		vBoost float64
		want   cp.Vector
	}{
		{name: "clamps x", vel: cp.Vector{X: 2000, Y: -50}, hBoost: 1, vBoost: 1, want: cp.Vector{X: 1000, Y: -50}},
		{name: "clamps negative", vel: cp.Vector{X: -3000, Y: -4000}, hBoost: 1, vBoost: 1, want: cp.Vector{X: -1000, Y: -1000}},
		{name: "boost then clamp", vel: cp.Vector{X: 300, Y: 100}, hBoost: 2.4, vBoost: 0.5, want: cp.Vector{X: 720, Y: 50}},
		{name: "untouched", vel: cp.Vector{X: 12, Y: 34}, hBoost: 1, vBoost: 1, want: cp.Vector{X: 12, Y: 34}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			_, b, body := h.block(cp.Vector{}, 0, true)
			body.SetVelocity(tt.vel)
			b.Dropped(tt.hBoost, tt.vBoost)
			if got := body.Velocity(); got != tt.want {
				t.Fatalf("velocity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlockPickUpAndDropGroups(t *testing.T) {
	h := newHarness(t)
	c := h.countdown()
	carrier, _, _ := h.physics(false, cp.Vector{}, cp.Vector{X: 800, Y: 2700})
	_, b, body := h.block(cp.Vector{X: 1000}, 0, true)

	b.PickedUp(carrier)
	if !b.HasParent() || b.Carrier() != carrier {
		t.Fatalf("carrier = %v, want %v", b.Carrier(), carrier)
	}
	if !body.HasGroup(GroupBlockFloating) || !body.HasGroupNoResolve(GroupPlayer) {
		t.Fatalf("carried block missing floating state")
	}
	if !c.Running() {
		t.Fatalf("pickup did not start the countdown")
	}

	b.Dropped(1, 1)
	if b.HasParent() {
		t.Fatalf("still carried after drop")
	}
	if body.HasGroup(GroupBlockFloating) {
		t.Fatalf("dropped block still floating")
	}
	if !body.HasGroupNoResolve(GroupPlayer) {
		t.Fatalf("player pass-through must last until the block lands")
	}
}

func TestBlockPickUpKeepsRunningCountdown(t *testing.T) {
	h := newHarness(t)
	c := h.countdown()
	c.Start()
	c.Remaining = 40
	carrier, _, _ := h.physics(false, cp.Vector{}, cp.Vector{X: 800, Y: 2700})
	_, b, _ := h.block(cp.Vector{X: 1000}, 0, true)

	b.PickedUp(carrier)
	if c.Remaining != 40 {
		t.Fatalf("remaining = %v, a second pickup must not restart the timer", c.Remaining)
	}
}

func TestBlockFollowsCarryPoint(t *testing.T) {
	tests := []struct {
		name     string
		blockPos cp.Vector
		carried  bool
		vel      cp.Vector
	}{
		{name: "inside leash", blockPos: cp.Vector{X: 1000}, carried: true, vel: cp.Vector{X: 700}},
		{name: "exactly at leash", blockPos: cp.Vector{X: 3400}, carried: true, vel: cp.Vector{X: -1700}},
		{name: "beyond leash", blockPos: cp.Vector{X: 3401}, carried: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			carrier, _, _ := h.physics(false, cp.Vector{}, cp.Vector{X: 800, Y: 2700})
			_, b, body := h.block(tt.blockPos, 0, true)
			b.PickedUp(carrier)
			b.SetOffset(cp.Vector{X: 1700})

			b.Update(1)
			if b.HasParent() != tt.carried {
				t.Fatalf("carried = %v, want %v", b.HasParent(), tt.carried)
			}
			if tt.carried && body.Velocity() != tt.vel {
				t.Fatalf("velocity = %v, want %v", body.Velocity(), tt.vel)
			}
			if !tt.carried && body.HasGroup(GroupBlockFloating) {
				t.Fatalf("snapped block still floating")
			}
		})
	}
}

func TestBlockReleasedWhenCarrierDies(t *testing.T) {
	h := newHarness(t)
	carrier, _, _ := h.physics(false, cp.Vector{}, cp.Vector{X: 800, Y: 2700})
	_, b, body := h.block(cp.Vector{X: 1000}, 0, true)
	b.PickedUp(carrier)

	ecs.DestroyEntity(h.w, carrier)
	ecs.Refresh(h.w)
	if b.HasParent() {
		t.Fatalf("dead carrier still counts as parent")
	}

	b.Update(1)
	if b.Carrier().Valid() {
		t.Fatalf("stale carrier handle kept")
	}
	if body.HasGroup(GroupBlockFloating) {
		t.Fatalf("released block still floating")
	}
}

func TestBlockBounceSound(t *testing.T) {
	tests := []struct {
		name     string
		vel      cp.Vector
		res      cp.Vector
		floating bool
		want     int
	}{
		{name: "fast landing", vel: cp.Vector{Y: 500}, res: cp.Vector{Y: -10}, want: 1},
		{name: "slow landing", vel: cp.Vector{Y: 300}, res: cp.Vector{Y: -10}, want: 0},
		{name: "fast sideways hit", vel: cp.Vector{X: -450}, res: cp.Vector{X: 10}, want: 1},
		{name: "speed on other axis", vel: cp.Vector{X: 900}, res: cp.Vector{Y: -10}, want: 0},
		{name: "carried", vel: cp.Vector{Y: 500}, res: cp.Vector{Y: -10}, floating: true, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			_, _, body := h.block(cp.Vector{}, 0, true)
			if tt.floating {
				body.AddGroups(GroupBlockFloating)
			}
			body.SetVelocity(tt.vel)
			h.engine.Resolve(body, h.floor, tt.res)
			h.tick()
			if got := h.soundCount(SoundBounce); got != tt.want {
				t.Fatalf("bounce sounds = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBlockOverstress(t *testing.T) {
	tests := []struct {
		name   string
		stress float64
		alive  bool
	}{
		{name: "at limit", stress: BlockMaxStress, alive: true},
		{name: "over limit", stress: BlockMaxStress + 1, alive: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			e, _, body := h.block(cp.Vector{}, 0, true)
			body.SetStress(cp.Vector{Y: tt.stress})
			h.tick()
			if ecs.IsAlive(h.w, e) != tt.alive {
				t.Fatalf("alive = %v, want %v", ecs.IsAlive(h.w, e), tt.alive)
			}
			if body.Destroyed() == tt.alive {
				t.Fatalf("body destroyed = %v", body.Destroyed())
			}
		})
	}
}

func TestBlockLabelShowsVerticalStress(t *testing.T) {
	h := newHarness(t)
	_, b, body := h.block(cp.Vector{}, 0, true)
	if b.Label() != "0" {
		t.Fatalf("initial label = %q", b.Label())
	}
	body.SetStress(cp.Vector{X: 900, Y: 42.7})
	h.tick()
	h.tick()
	if b.Label() != "42" {
		t.Fatalf("label = %q, want 42", b.Label())
	}
}

func TestBlockGroundedSnapsAndLandsForPlayer(t *testing.T) {
	tests := []struct {
		name string
		vx   float64
		want float64
	}{
		{name: "creeping", vx: 3, want: 0},
		{name: "creeping left", vx: -4.9, want: 0},
		{name: "sliding", vx: 6, want: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			_, b, body := h.block(cp.Vector{}, 0, true)
			h.ground(b.Physics())
			h.tick()

			body.AddGroupsNoResolve(GroupPlayer)
			body.SetVelocityX(tt.vx)
			h.tick()
			if got := body.Velocity().X; got != tt.want {
				t.Fatalf("vx = %v, want %v", got, tt.want)
			}
			if body.HasGroupNoResolve(GroupPlayer) {
				t.Fatalf("landed block still lets the player through")
			}
		})
	}
}

func TestBlockCarriedKeepsPlayerPassThroughOnGround(t *testing.T) {
	h := newHarness(t)
	carrier, _, _ := h.physics(false, cp.Vector{}, cp.Vector{X: 800, Y: 2700})
	_, b, body := h.block(cp.Vector{X: 1000}, 0, true)
	h.ground(b.Physics())
	h.tick()

	b.PickedUp(carrier)
	b.SetOffset(cp.Vector{X: 1000})
	h.tick()
	if !body.HasGroupNoResolve(GroupPlayer) {
		t.Fatalf("carried block collides with the player")
	}
}

func TestBlockDestroyReleasesCarrier(t *testing.T) {
	h := newHarness(t)
	carrier, _, _ := h.physics(false, cp.Vector{}, cp.Vector{X: 800, Y: 2700})
	e, b, body := h.block(cp.Vector{X: 1000}, 0, true)
	b.PickedUp(carrier)

	ecs.DestroyEntity(h.w, e)
	ecs.Refresh(h.w)
	if b.Carrier().Valid() {
		t.Fatalf("destroyed block kept its carrier")
	}
	if !body.Destroyed() {
		t.Fatalf("block body survived")
	}
}
