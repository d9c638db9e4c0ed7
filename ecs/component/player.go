package component

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockdrop/ecs"
	"github.com/milk9111/blockdrop/physics"
)

type Action int

const (
	ActionStanding Action = iota
	ActionWalking
	ActionJumping
	ActionFalling
)

func (a Action) String() string {
	switch a {
	case ActionWalking:
		return "walking"
	case ActionJumping:
		return "jumping"
	case ActionFalling:
		return "falling"
	default:
		return "standing"
	}
}

// NextAction re-derives the player action. On the ground a speed between zero
// and walkSpeed keeps the previous action, and so does a zero vertical speed
// in the air.
func NextAction(grounded bool, vel cp.Vector, walkSpeed float64, prev Action) Action {
	if grounded {
		switch {
		case vel.X == 0:
			return ActionStanding
		case math.Abs(vel.X) >= walkSpeed:
			return ActionWalking
		}
		return prev
	}
	switch {
	case vel.Y > 0:
		return ActionFalling
	case vel.Y < 0:
		return ActionJumping
	}
	return prev
}

// Controls is the input gate polled by the player every tick.
type Controls interface {
	// MoveX is -1, 0 or 1.
	MoveX() int
	Jump() bool
	// Action is held while the player wants to pick up or keep carrying.
	Action() bool
}

type PlayerSettings struct {
	WalkSpeed     float64
	JumpSpeed     float64
	TurnCooldown  float64
	JumpCooldown  float64
	StepInterval  float64
	ReleaseGrace  float64
	ThrowBoost    float64
	CarryOffset   cp.Vector
	PickupSize    cp.Vector
	PickupOffsetY float64
}

var DefaultPlayerSettings = PlayerSettings{
	WalkSpeed:     150,
	JumpSpeed:     520,
	TurnCooldown:  20,
	JumpCooldown:  20,
	StepInterval:  26,
	ReleaseGrace:  15,
	ThrowBoost:    0.12,
	CarryOffset:   cp.Vector{X: 1000, Y: -600},
	PickupSize:    cp.Vector{X: 10, Y: 2400},
	PickupOffsetY: 300,
}

// Player drives a physics adapter from Controls and carries at most one
// block. The carried block is tracked by entity handle and re-validated
// before each use.
type Player struct {
	world    *ecs.World
	self     ecs.Entity
	physics  *Physics
	pickup   *Sensor
	controls Controls
	settings PlayerSettings

	action     Action
	facingLeft bool
	jumpReady  bool

	lastTurn float64
	lastJump float64
	stepTime float64

	block          ecs.Entity
	lastBlock      physics.Body
	lastBlockTimer float64
}

var PlayerComponent = ecs.NewComponent[Player]()

func NewPlayer(w *ecs.World, e ecs.Entity, p *Physics, controls Controls, settings PlayerSettings) *Player {
	if w == nil || p == nil {
		panic("component: player needs a world and a physics adapter")
	}

	pl := &Player{world: w, self: e, physics: p, controls: controls, settings: settings}
	pl.pickup = NewSensor(p.World(), p.Body(), settings.PickupSize)
	pl.pickup.AddGroupsToCheck(GroupBlock)
	pl.pickup.SetPosition(pl.pickupPosition(pl.carryOffset()))
	pl.pickup.OnDetection.Add(pl.onPickupDetection)

	p.Body().Hooks().OnPreUpdate.Add(func() { pl.jumpReady = false })
	p.OnResolution.Add(pl.onResolution)
	return pl
}

func (p *Player) onResolution(ri *physics.ResolutionInfo) {
	p.jumpReady = true

	// Identity comparison: a recycled engine body would also match.
	if p.lastBlock == nil || ri.Body != p.lastBlock || p.lastBlockTimer <= 0 {
		return
	}
	ri.NoResolvePosition = true
	ri.NoResolveVelocity = true
}

func (p *Player) onPickupDetection(e ecs.Entity) {
	if p.HasBlock() || p.controls == nil || !p.controls.Action() {
		return
	}
	other, ok := ecs.Get(p.world, e, PhysicsComponent.Kind())
	if !ok || !other.Body().HasGroup(GroupCanBePicked) {
		return
	}
	block, ok := ecs.Get(p.world, e, BlockComponent.Kind())
	if !ok || block.HasParent() {
		return
	}
	p.PickUp(e)
}

// PickUp carries the block owned by e, dropping any block held before.
func (p *Player) PickUp(e ecs.Entity) bool {
	block, ok := ecs.Get(p.world, e, BlockComponent.Kind())
	if !ok {
		return false
	}
	if prev, ok := p.carried(); ok && p.block != e {
		prev.Dropped(1, 1)
	}

	block.PickedUp(p.self)
	p.block = e
	p.lastBlock = block.Physics().Body()
	PlaySound(p.world, SoundPick, PlayAbort)
	return true
}

func (p *Player) carried() (*Block, bool) {
	if !p.block.Valid() {
		return nil, false
	}
	return ecs.Get(p.world, p.block, BlockComponent.Kind())
}

func (p *Player) carryOffset() cp.Vector {
	offset := p.settings.CarryOffset
	if p.facingLeft {
		offset.X = -offset.X
	}
	return offset
}

func (p *Player) pickupPosition(offset cp.Vector) cp.Vector {
	return p.physics.Position().Add(cp.Vector{X: offset.X / 2, Y: p.settings.PickupOffsetY})
}

func (p *Player) Update(dt float64) {
	if p == nil || p.physics.Body().Destroyed() {
		return
	}

	offset := p.carryOffset()
	p.pickup.SetPosition(p.pickupPosition(offset))

	if p.block.Valid() {
		block, ok := p.carried()
		if !ok {
			p.block = 0
		} else {
			p.lastBlockTimer = p.settings.ReleaseGrace
			block.SetOffset(offset)

			if p.controls == nil || !p.controls.Action() {
				PlaySound(p.world, SoundDrop, PlayAbort)
				block.Dropped(p.throwBoosts())
				p.block = 0
				return
			}
			if !block.HasParent() {
				p.block = 0
			}
		}
	} else if p.lastBlockTimer > 0 {
		p.lastBlockTimer -= dt
	}

	wasFacingLeft := p.facingLeft
	if p.controls != nil {
		p.Move(p.controls.MoveX(), dt)
		if p.controls.Jump() {
			p.Jump()
		}
	}

	vel := p.physics.Velocity()
	switch {
	case vel.X > 0:
		p.facingLeft = false
	case vel.X < 0:
		p.facingLeft = true
	}
	if p.facingLeft != wasFacingLeft {
		p.lastTurn = p.settings.TurnCooldown
	}

	p.action = NextAction(p.physics.IsGrounded(), vel, p.settings.WalkSpeed, p.action)

	if p.lastTurn > 0 {
		p.lastTurn -= dt
	}
	if p.lastJump > 0 {
		p.lastJump -= dt
	}
}

// throwBoosts scales a drop right after a turn or a jump.
func (p *Player) throwBoosts() (float64, float64) {
	h, v := 1.0, 1.0
	if p.lastTurn > 0 {
		h = p.lastTurn * p.settings.ThrowBoost
	}
	if p.lastJump > 0 {
		v = p.lastJump * p.settings.ThrowBoost
	}
	return h, v
}

// Move sets the horizontal velocity and plays footsteps while walking on the
// ground. The step timer counts elapsed time, not calls.
func (p *Player) Move(dir int, dt float64) {
	p.physics.Body().SetVelocityX(p.settings.WalkSpeed * float64(dir))
	if dir == 0 {
		return
	}
	if p.stepTime > 0 {
		p.stepTime -= dt
	} else if p.physics.IsGrounded() {
		PlaySound(p.world, SoundStep, PlayOverlap)
		p.stepTime = p.settings.StepInterval
	}
}

// Jump adds the jump impulse unless airborne or cooling down.
func (p *Player) Jump() {
	if p.physics.IsInAir() || p.lastJump > 0 {
		return
	}
	body := p.physics.Body()
	body.SetVelocityY(body.Velocity().Y - p.settings.JumpSpeed)
	p.lastJump = p.settings.JumpCooldown
	PlaySound(p.world, SoundJump, PlayOverlap)
}

func (p *Player) Action() Action         { return p.action }
func (p *Player) FacingLeft() bool       { return p.facingLeft }
func (p *Player) JumpReady() bool        { return p.jumpReady }
func (p *Player) HasBlock() bool         { return p.block.Valid() }
func (p *Player) Block() ecs.Entity      { return p.block }
func (p *Player) Physics() *Physics      { return p.physics }
func (p *Player) PickupSensor() *Sensor  { return p.pickup }
func (p *Player) SetControls(c Controls) { p.controls = c }

// Destroy drops the carried block and releases the pickup sensor.
func (p *Player) Destroy() {
	if block, ok := p.carried(); ok {
		block.Dropped(1, 1)
	}
	p.block = 0
	p.pickup.Destroy()
}
