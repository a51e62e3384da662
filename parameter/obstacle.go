package parameter

// Spring
const (
	SpringDefaultForce = 15.0
	// SpringSideLift is the vertical impulse of a sideways spring
	SpringSideLift = -5.0
)

// Cannon and projectiles
const (
	CannonDefaultRateMs = 2000

	BulletSize  = 10.0
	BulletSpeed = 5.0

	MissileSize       = 15.0
	MissileSpeed      = 3.0
	MissileLifeMs     = 3000
	MissileRetargetMs = 250
	// MissileOvershoot extends the aim point past the target so it can be dodged
	MissileOvershoot = 1.5

	// ProjectileCullMargin is the distance outside the view before a projectile is removed
	ProjectileCullMargin = 500.0
)

// Goal
const (
	// GoalLandTolerance accepts a landing whose previous bottom was slightly below the top
	GoalLandTolerance = 8.0
	// GoalTouchEpsilon treats a resting contact as touching
	GoalTouchEpsilon = 1.0
	// GoalMinVY rejects clears while still rising fast
	GoalMinVY = -2.0
)

// Screen-edge walls
const (
	ScreenWallMargin = 30.0
	// ScreenWallBounce amplifies the outward horizontal speed on contact
	ScreenWallBounce = 1.2
)
