package component

import "github.com/milk9111/blockdrop/ecs"

// Teleporter ends the level once the player touches it with no blocks left.
type Teleporter struct {
	world     *ecs.World
	triggered bool
}

var TeleporterComponent = ecs.NewComponent[Teleporter]()

func NewTeleporter(w *ecs.World, p *Physics) *Teleporter {
	if w == nil || p == nil {
		panic("component: teleporter needs a world and a physics adapter")
	}
	t := &Teleporter{world: w}
	p.SetAffectedByGravity(false)
	body := p.Body()
	body.AddGroupsToCheck(GroupPlayer)
	body.SetResolve(false)
	p.OnDetection.Add(t.onDetection)
	return t
}

func (t *Teleporter) onDetection(e ecs.Entity) {
	if t.triggered {
		return
	}
	other, ok := ecs.Get(t.world, e, PhysicsComponent.Kind())
	if !ok || !other.Body().HasGroup(GroupPlayer) {
		return
	}
	if ecs.Count(t.world, BlockTagComponent.Kind()) != 0 {
		return
	}
	t.triggered = true
	RequestLevelChange(t.world, LevelNext)
	PlaySound(t.world, SoundTele, PlayOverride)
}

// Triggered reports whether the teleporter already requested the next level.
func (t *Teleporter) Triggered() bool { return t.triggered }
