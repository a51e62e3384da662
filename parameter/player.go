package parameter

// Player geometry in world pixels
// Hitbox is decoupled from the visual sprite; offsets reconcile the two
const (
	HitboxWidth   = 42.0
	HitboxHeight  = 64.0
	SpriteWidth   = 96.0
	SpriteHeight  = 96.0
	HitboxOffsetX = 0.0
	HitboxOffsetY = 10.0
	SpriteOffsetY = 12.0
)

// Hit reaction
const (
	HitStunMs = 500.0

	// LethalKnockY is the vertical impulse from a lethal floor
	LethalKnockY = -15.0
	// LethalKnockXMult reverses and halves horizontal speed on lethal contact
	LethalKnockXMult = -0.5

	// ProjectileKnockMult scales projectile velocity into player impulse
	ProjectileKnockMult = 2.0
	// ProjectileKnockLift is added to the vertical impulse from projectiles
	ProjectileKnockLift = -5.0
)

// Animation frames (sprite sheet indices) and timing
const (
	AnimIdleStart = 0
	AnimIdleEnd   = 2
	AnimRunStart  = 5
	AnimRunEnd    = 12
	AnimHitStart  = 3
	AnimHitEnd    = 4
	AnimJumpStart = 13
	AnimFallStart = 17

	AnimIdleMs = 100.0
	AnimRunMs  = 50.0
	AnimHitMs  = 50.0

	// AnimRiseThreshold separates JUMP from FALL while airborne
	AnimRiseThreshold = -1.0
	// AnimRunThreshold is the horizontal speed above which RUN plays
	AnimRunThreshold = 0.1
)

// Reposition (re-snap onto a platform after focus loss or teleport)
const (
	// RepositionMaxVY skips re-snap while moving faster than this vertically
	RepositionMaxVY = 2.0
	// RepositionRange is how far below the feet a candidate platform may be
	RepositionRange = 100.0
)
