package component

import (
	"log"

	"github.com/milk9111/blockdrop/ecs"
)

// Receiver consumes overlapping blocks whose value matches its own; -1
// accepts any block.
type Receiver struct {
	world   *ecs.World
	physics *Physics
	value   int
}

var ReceiverComponent = ecs.NewComponent[Receiver]()

func NewReceiver(w *ecs.World, p *Physics, value int) *Receiver {
	if w == nil || p == nil {
		panic("component: receiver needs a world and a physics adapter")
	}
	r := &Receiver{world: w, physics: p, value: value}
	p.SetAffectedByGravity(false)
	body := p.Body()
	body.AddGroups(GroupReceiver)
	body.AddGroupsToCheck(GroupBlock)
	body.SetResolve(false)
	p.OnDetection.Add(r.onDetection)
	return r
}

func (r *Receiver) onDetection(e ecs.Entity) {
	if ecs.IsDoomed(r.world, e) {
		return
	}
	other, ok := ecs.Get(r.world, e, PhysicsComponent.Kind())
	if !ok || !other.Body().HasGroup(GroupBlock) {
		return
	}
	block, ok := ecs.Get(r.world, e, BlockComponent.Kind())
	if !ok {
		return
	}
	if r.value != -1 && block.Value() != r.value {
		return
	}

	PlaySound(r.world, SoundRecv, PlayOverride)
	ecs.DestroyEntity(r.world, e)
	RefreshCountdown(r.world)
	log.Printf("Receiver: consumed %s (value %d)", e, block.Value())
}

func (r *Receiver) Value() int { return r.value }
