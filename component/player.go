package component

import (
	"time"

	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/parameter"
	"github.com/lixenwraith/hell-escape/vmath"
)

// AnimState is the derived animation state
type AnimState uint8

const (
	AnimIdle AnimState = iota
	AnimRun
	AnimJump
	AnimFall
	AnimHit
)

func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "IDLE"
	case AnimRun:
		return "RUN"
	case AnimJump:
		return "JUMP"
	case AnimFall:
		return "FALL"
	case AnimHit:
		return "HIT"
	}
	return "UNKNOWN"
}

// Animation holds sprite sheet playback
type Animation struct {
	State AnimState
	Frame int
	Timer time.Duration
}

// Player is the controllable body; position is the entity anchor, not the hitbox corner
type Player struct {
	Pos  vmath.Vec
	Prev vmath.Vec // Position before this tick's integration
	core.Kinetic

	Grounded bool
	Stunned  bool
	HitTimer time.Duration // Remaining stun

	JumpCharge float64
	Charging   bool

	Friction    float64 // Active ground friction, reset to baseline every tick
	FacingRight bool

	Anim Animation
}

// NewPlayer creates a player at (x, y) facing right
func NewPlayer(x, y, friction float64) *Player {
	return &Player{
		Pos:         vmath.Vec{X: x, Y: y},
		Prev:        vmath.Vec{X: x, Y: y},
		Friction:    friction,
		FacingRight: true,
	}
}

// Hitbox returns the collision rectangle
func (p *Player) Hitbox() vmath.Rect {
	return hitboxAt(p.Pos)
}

// PrevHitbox returns the collision rectangle at the previous position
func (p *Player) PrevHitbox() vmath.Rect {
	return hitboxAt(p.Prev)
}

// SpriteRect returns the visual rectangle, bottom-aligned to the hitbox plus sprite offset
func (p *Player) SpriteRect() vmath.Rect {
	hb := p.Hitbox()
	return vmath.Rect{
		X: hb.CenterX() - parameter.SpriteWidth/2,
		Y: hb.Bottom() - parameter.SpriteHeight + parameter.SpriteOffsetY,
		W: parameter.SpriteWidth,
		H: parameter.SpriteHeight,
	}
}

func hitboxAt(pos vmath.Vec) vmath.Rect {
	return vmath.Rect{
		X: pos.X + parameter.HitboxOffsetX,
		Y: pos.Y - parameter.HitboxOffsetY,
		W: parameter.HitboxWidth,
		H: parameter.HitboxHeight,
	}
}

// LandOn places the hitbox bottom exactly on top and grounds the player
func (p *Player) LandOn(top float64) {
	p.Pos.Y = top - parameter.HitboxHeight + parameter.HitboxOffsetY
	p.VY = 0
	p.Grounded = true
}

// Hit stuns the player, cancels any charge and replaces velocity with the impulse
func (p *Player) Hit(fx, fy float64) {
	p.Stunned = true
	p.HitTimer = time.Duration(parameter.HitStunMs * float64(time.Millisecond))
	p.Grounded = false
	p.VX, p.VY = fx, fy
	p.CancelCharge()
}

// CancelCharge drops an in-progress jump charge
func (p *Player) CancelCharge() {
	p.JumpCharge = 0
	p.Charging = false
}

// PlaceAt moves the player without carrying velocity into the swept checks
func (p *Player) PlaceAt(x, y float64) {
	p.Pos = vmath.Vec{X: x, Y: y}
	p.Prev = p.Pos
}

// PlaceOn stands the player on top, horizontally centered on x
func (p *Player) PlaceOn(centerX, top float64) {
	x := centerX - parameter.HitboxWidth/2 - parameter.HitboxOffsetX
	p.PlaceAt(x, p.Pos.Y)
	p.LandOn(top)
	p.Prev = p.Pos
}

// ResetMotion clears all dynamic state but keeps position
func (p *Player) ResetMotion(friction float64) {
	p.VX, p.VY = 0, 0
	p.Grounded = false
	p.Stunned = false
	p.HitTimer = 0
	p.CancelCharge()
	p.Friction = friction
	p.Anim = Animation{}
}
