package system

import (
	"strconv"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/ecs/component"
	"github.com/milk9111/blockdrop/ecs/entity"
	"github.com/milk9111/blockdrop/physics/chipmunk"
)

func newChipmunkLevel(t *testing.T) (*ecs.World, *entity.Factory) {
	t.Helper()
	cfg, err := entity.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	w := ecs.NewWorld()
	space := chipmunk.NewSpace()
	space.StressScale = cfg.StressScale
	for _, s := range Gameplay(space) {
		w.AddSystem(s)
	}
	return w, entity.NewFactory(w, space, nil, cfg, 1)
}

func mustBlock(t *testing.T, f *entity.Factory, pos cp.Vector) (ecs.Entity, *component.Block) {
	t.Helper()
	e, err := f.NewBlock(entity.BlockNormal, pos, -1)
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	b, _ := ecs.Get(f.World(), e, component.BlockComponent.Kind())
	return e, b
}

func TestRestingStackCarriesStress(t *testing.T) {
	w, f := newChipmunkLevel(t)
	for x := 0; x < 3; x++ {
		if _, err := f.NewWall(entity.CellCenter(float64(x), 3)); err != nil {
			t.Fatalf("NewWall: %v", err)
		}
	}
	// Floor top is at 3*TileSize; blocks are 1600 tall.
	floorTop := 3.0 * entity.TileSize
	x := entity.CellCenter(1, 0).X
	_, bottom := mustBlock(t, f, cp.Vector{X: x, Y: floorTop - 800})
	_, middle := mustBlock(t, f, cp.Vector{X: x, Y: floorTop - 2400})
	mustBlock(t, f, cp.Vector{X: x, Y: floorTop - 4000})

	for i := 0; i < 120; i++ {
		w.Update(1)
	}

	stress := bottom.Physics().Body().Stress().Y
	if stress <= 0 {
		t.Fatalf("bottom block stress = %v, want > 0", stress)
	}
	if top := middle.Physics().Body().Stress().Y; top >= stress {
		t.Fatalf("middle stress %v not below bottom stress %v", top, stress)
	}

	// The label is refreshed before the step, from the last tick's stress.
	w.Update(1)
	if want := strconv.Itoa(int(stress)); bottom.Label() != want {
		t.Fatalf("label = %q, want %q", bottom.Label(), want)
	}
	if bottom.Label() == "0" {
		t.Fatalf("label never picked up the stress")
	}
	if stress > component.BlockMaxStress {
		t.Fatalf("resting stack overstressed: %v", stress)
	}
}

func TestLiftSqueezeDestroysBlock(t *testing.T) {
	w, f := newChipmunkLevel(t)
	for x := 0; x < 3; x++ {
		if _, err := f.NewWall(entity.CellCenter(float64(x), 0)); err != nil {
			t.Fatalf("NewWall: %v", err)
		}
	}
	ceiling := entity.TileSize * 1.0
	x := entity.CellCenter(1, 0).X
	e, b := mustBlock(t, f, cp.Vector{X: x, Y: ceiling + 800})
	if _, err := f.NewLift(cp.Vector{X: x, Y: ceiling + 1600 + 900}, cp.Vector{Y: -100}); err != nil {
		t.Fatalf("NewLift: %v", err)
	}

	maxStress := 0.0
	for i := 0; i < 300 && ecs.IsAlive(w, e); i++ {
		if s := b.Physics().Body().Stress().Y; s > maxStress {
			maxStress = s
		}
		w.Update(1)
	}
	if ecs.IsAlive(w, e) {
		t.Fatalf("squeezed block survived, max stress %v", maxStress)
	}
	if ecs.Count(w, component.BlockTagComponent.Kind()) != 0 {
		t.Fatalf("block tag still counted after overstress")
	}
}
