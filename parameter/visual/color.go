package visual

import "github.com/lixenwraith/hell-escape/core"

// General colors
var (
	RgbBlack = core.RGB{R: 0, G: 0, B: 0}
	RgbWhite = core.RGB{R: 255, G: 255, B: 255}
)

// Background gradient, darkening toward the top of the world
var (
	RgbSkyBottom = core.RGB{R: 70, G: 18, B: 12}
	RgbSkyTop    = core.RGB{R: 12, G: 6, B: 20}
)

// BackgroundTintAlpha is how strongly a stage's image color tints the gradient
const BackgroundTintAlpha = 0.55

// World geometry
var (
	RgbPlatform    = core.RGB{R: 120, G: 96, B: 80}
	RgbPlatformTop = core.RGB{R: 168, G: 140, B: 110}
	RgbWall        = core.RGB{R: 90, G: 90, B: 104}
	RgbLethal      = core.RGB{R: 230, G: 40, B: 20}
	RgbIce         = core.RGB{R: 150, G: 220, B: 255}
	RgbGoal        = core.RGB{R: 255, G: 215, B: 0}
	RgbSpring      = core.RGB{R: 60, G: 220, B: 90}
	RgbTeleporter  = core.RGB{R: 200, G: 80, B: 255}
	RgbCannon      = core.RGB{R: 110, G: 110, B: 110}
	RgbBullet      = core.RGB{R: 255, G: 170, B: 40}
	RgbMissile     = core.RGB{R: 255, G: 60, B: 120}
)

// Player colors by animation state
var (
	RgbPlayer        = core.RGB{R: 235, G: 235, B: 245}
	RgbPlayerRun     = core.RGB{R: 210, G: 230, B: 255}
	RgbPlayerAir     = core.RGB{R: 180, G: 210, B: 255}
	RgbPlayerHit     = core.RGB{R: 255, G: 90, B: 90}
	RgbPlayerFacing  = core.RGB{R: 40, G: 40, B: 60}
	RgbChargeLow     = core.RGB{R: 255, G: 240, B: 120}
	RgbChargeHigh    = core.RGB{R: 255, G: 80, B: 0}
	RgbDebugHitbox   = core.RGB{R: 0, G: 255, B: 255}
	RgbDebugText     = core.RGB{R: 0, G: 255, B: 160}
	RgbOverlayDim    = core.RGB{R: 0, G: 0, B: 0}
	OverlayDimAlpha  = 0.5
	PlayerSpriteFill = 0.85
)
