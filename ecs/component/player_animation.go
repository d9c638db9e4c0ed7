package component

import "github.com/milk9111/blockdrop/ecs"

const (
	spriteLegs  = 0
	spriteTorso = 1
)

// PlayerAnimations holds the clips of both body parts. Hold replaces the
// torso clip while a block is carried.
type PlayerAnimations struct {
	Torso map[Action]*Animation
	Legs  map[Action]*Animation
	Hold  *Animation
}

// PlayerAnimation picks torso and legs clips from the player's derived state
// and writes their frames into the sprite.
type PlayerAnimation struct {
	player  *Player
	sprite  *Sprite
	tileset Tileset
	clips   PlayerAnimations

	torso *Animation
	legs  *Animation
}

var PlayerAnimationComponent = ecs.NewComponent[PlayerAnimation]()

func NewPlayerAnimation(player *Player, sprite *Sprite, tileset Tileset, clips PlayerAnimations) *PlayerAnimation {
	if player == nil || sprite == nil {
		panic("component: player animation needs a player and a sprite")
	}
	for len(sprite.Elements) <= spriteTorso {
		sprite.AddElement(tileset.Rect(TileIndex{}))
	}
	return &PlayerAnimation{player: player, sprite: sprite, tileset: tileset, clips: clips}
}

func (a *PlayerAnimation) Update(dt float64) {
	a.sprite.FlipX = a.player.FacingLeft()

	action := a.player.Action()
	if clip, ok := a.clips.Torso[action]; ok {
		a.torso = clip
	}
	if clip, ok := a.clips.Legs[action]; ok {
		a.legs = clip
	}
	if a.player.HasBlock() && a.clips.Hold != nil {
		a.torso = a.clips.Hold
	}

	if a.torso != nil {
		a.torso.Update(dt)
		a.sprite.SetSource(spriteTorso, a.tileset.Rect(a.torso.Tile()))
	}
	if a.legs != nil {
		a.legs.Update(dt)
		a.sprite.SetSource(spriteLegs, a.tileset.Rect(a.legs.Tile()))
	}
}

func (a *PlayerAnimation) Torso() *Animation { return a.torso }
func (a *PlayerAnimation) Legs() *Animation  { return a.legs }
