package component

import (
	"log"
	"math"
	"strconv"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/common"
	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/physics"
)

const (
	// BlockLeash is the distance from the carry point at which a block is
	// torn away from its carrier.
	BlockLeash        = 1700
	BlockMaxDropSpeed = 1000
	BlockBounceSpeed  = 400
	BlockMaxStress    = 10000
	blockSnapSpeed    = 5
)

// Block is a carryable value holder. It is Free while carrier is the zero
// entity and Carried otherwise; the carrier is resolved through the world on
// every use so a destroyed carrier never leaves a dangling reference.
type Block struct {
	world   *ecs.World
	self    ecs.Entity
	physics *Physics

	value   int
	carrier ecs.Entity
	offset  cp.Vector
	label   string
}

var BlockComponent = ecs.NewComponent[Block]()

// NewBlock attaches block behavior to p. A value of -1 matches any receiver.
func NewBlock(w *ecs.World, e ecs.Entity, p *Physics, value int) *Block {
	if w == nil || p == nil {
		panic("component: block needs a world and a physics adapter")
	}

	b := &Block{world: w, self: e, physics: p, value: value, label: "0"}
	hooks := p.Body().Hooks()
	hooks.OnPreUpdate.Add(b.preUpdate)
	hooks.OnPostUpdate.Add(b.postUpdate)
	p.OnResolution.Add(b.onResolution)
	return b
}

func (b *Block) onResolution(ri *physics.ResolutionInfo) {
	body := b.physics.Body()
	if body.HasGroup(GroupBlockFloating) {
		return
	}
	vel := body.Velocity()
	if (math.Abs(vel.X) > BlockBounceSpeed && ri.Resolution.X != 0) ||
		(math.Abs(vel.Y) > BlockBounceSpeed && ri.Resolution.Y != 0) {
		PlaySound(b.world, SoundBounce, PlayOverlap)
	}
}

func (b *Block) preUpdate() {
	body := b.physics.Body()
	if b.physics.IsGrounded() {
		if math.Abs(body.Velocity().X) < blockSnapSpeed {
			body.SetVelocityX(0)
		}
		if !b.HasParent() {
			body.DelGroupsNoResolve(GroupPlayer)
		}
	}
	b.label = strconv.Itoa(int(body.Stress().Y))
}

func (b *Block) postUpdate() {
	stress := b.physics.Body().Stress()
	if stress.Y <= BlockMaxStress {
		return
	}
	if ecs.DestroyEntity(b.world, b.self) {
		log.Printf("Block: %s overstressed (%.0f), destroying", b.self, stress.Y)
	}
}

// Update makes a carried block track its carry point, or drops it when the
// leash snaps or the carrier is gone.
func (b *Block) Update(dt float64) {
	if b == nil || !b.carrier.Valid() || b.physics.Body().Destroyed() {
		return
	}

	carrier, ok := ecs.Get(b.world, b.carrier, PhysicsComponent.Kind())
	if !ok {
		b.release()
		return
	}

	body := b.physics.Body()
	delta := carrier.Position().Add(b.offset).Sub(body.Position())
	if delta.Length() > BlockLeash {
		log.Printf("Block: %s leash snapped at %.0f", b.self, delta.Length())
		b.Dropped(1, 1)
		return
	}
	body.SetVelocity(delta)
}

// PickedUp moves the block to Carried and starts the level countdown.
func (b *Block) PickedUp(carrier ecs.Entity) {
	StartCountdown(b.world)
	b.carrier = carrier
	body := b.physics.Body()
	body.AddGroups(GroupBlockFloating)
	body.AddGroupsNoResolve(GroupPlayer)
}

// Dropped moves the block to Free, scaling its velocity by the boosts.
func (b *Block) Dropped(hBoost, vBoost float64) {
	b.carrier = 0
	body := b.physics.Body()
	vel := body.Velocity()
	vel = cp.Vector{X: vel.X * hBoost, Y: vel.Y * vBoost}
	body.SetVelocity(common.ClampVec(vel, -BlockMaxDropSpeed, BlockMaxDropSpeed))
	body.DelGroups(GroupBlockFloating)
}

func (b *Block) release() {
	b.carrier = 0
	b.physics.Body().DelGroups(GroupBlockFloating)
}

// HasParent reports whether a live carrier holds the block.
func (b *Block) HasParent() bool {
	return b.carrier.Valid() && ecs.IsAlive(b.world, b.carrier)
}

func (b *Block) Carrier() ecs.Entity        { return b.carrier }
func (b *Block) SetOffset(offset cp.Vector) { b.offset = offset }
func (b *Block) Offset() cp.Vector          { return b.offset }
func (b *Block) Value() int                 { return b.value }
func (b *Block) Physics() *Physics          { return b.physics }

// Label is the integer vertical stress shown above the block.
func (b *Block) Label() string { return b.label }

// Destroy detaches a carried block before its entity goes away.
func (b *Block) Destroy() {
	if b.carrier.Valid() {
		b.release()
	}
}
