package component

import (
	"time"

	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/vmath"
)

// Obstacle is any world object other than the player
// The variant set is closed; callers dispatch with a type switch on the concrete pointer
type Obstacle interface {
	Kind() Kind
	Bounds() vmath.Rect
	Alive() bool
}

// Platform is a one-way landing surface
type Platform struct {
	vmath.Rect
}

// LethalFloor knocks the player back on contact
type LethalFloor struct {
	vmath.Rect
}

// IceFloor lowers deceleration while stood on
type IceFloor struct {
	vmath.Rect
}

// Wall is solid on every face
type Wall struct {
	vmath.Rect
}

// Goal is a landing surface that clears the run
type Goal struct {
	vmath.Rect
}

// Spring launches the player in Direction with Force
type Spring struct {
	vmath.Rect
	Force     float64
	Direction Direction
}

// Teleporter moves the player to the start of TargetStage (1-based)
type Teleporter struct {
	vmath.Rect
	TargetStage int
}

// Cannon emits a projectile every FireRate of game time
type Cannon struct {
	vmath.Rect
	FireRate  time.Duration
	Direction Direction
	LastFire  time.Time // Zero until first shot, so the first update fires
}

// Bullet travels in a straight line until it hits or leaves the view
type Bullet struct {
	vmath.Rect
	core.Kinetic
	Dead bool
}

// HomingMissile re-aims at a lead point on a fixed interval and expires after Life
type HomingMissile struct {
	vmath.Rect
	core.Kinetic
	Speed   float64
	Life    time.Duration
	Spawn   time.Time
	LastAim time.Time
	Aim     vmath.Vec
	Dead    bool
}

func (o *Platform) Kind() Kind      { return KindPlatform }
func (o *LethalFloor) Kind() Kind   { return KindLethalFloor }
func (o *IceFloor) Kind() Kind      { return KindIceFloor }
func (o *Wall) Kind() Kind          { return KindWall }
func (o *Goal) Kind() Kind          { return KindGoal }
func (o *Spring) Kind() Kind        { return KindSpring }
func (o *Teleporter) Kind() Kind    { return KindTeleporter }
func (o *Cannon) Kind() Kind        { return KindCannon }
func (o *Bullet) Kind() Kind        { return KindBullet }
func (o *HomingMissile) Kind() Kind { return KindHomingMissile }

func (o *Platform) Bounds() vmath.Rect      { return o.Rect }
func (o *LethalFloor) Bounds() vmath.Rect   { return o.Rect }
func (o *IceFloor) Bounds() vmath.Rect      { return o.Rect }
func (o *Wall) Bounds() vmath.Rect          { return o.Rect }
func (o *Goal) Bounds() vmath.Rect          { return o.Rect }
func (o *Spring) Bounds() vmath.Rect        { return o.Rect }
func (o *Teleporter) Bounds() vmath.Rect    { return o.Rect }
func (o *Cannon) Bounds() vmath.Rect        { return o.Rect }
func (o *Bullet) Bounds() vmath.Rect        { return o.Rect }
func (o *HomingMissile) Bounds() vmath.Rect { return o.Rect }

func (o *Platform) Alive() bool      { return true }
func (o *LethalFloor) Alive() bool   { return true }
func (o *IceFloor) Alive() bool      { return true }
func (o *Wall) Alive() bool          { return true }
func (o *Goal) Alive() bool          { return true }
func (o *Spring) Alive() bool        { return true }
func (o *Teleporter) Alive() bool    { return true }
func (o *Cannon) Alive() bool        { return true }
func (o *Bullet) Alive() bool        { return !o.Dead }
func (o *HomingMissile) Alive() bool { return !o.Dead }

// Kill marks a projectile for removal at the next sweep
func Kill(o Obstacle) {
	switch p := o.(type) {
	case *Bullet:
		p.Dead = true
	case *HomingMissile:
		p.Dead = true
	}
}

// Velocity returns a projectile's velocity, zero for static obstacles
func Velocity(o Obstacle) (vx, vy float64) {
	switch p := o.(type) {
	case *Bullet:
		return p.VX, p.VY
	case *HomingMissile:
		return p.VX, p.VY
	}
	return 0, 0
}
