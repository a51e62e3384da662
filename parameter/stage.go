package parameter

// Stage stitching and discovery
const (
	// StageJumpGap is the vertical distance from a goal-side platform to the next entry platform
	StageJumpGap = 180.0

	// WorldBoundsMargin pads the union of platforms for camera clamping
	WorldBoundsMargin = 500.0

	// StageHysteresis is the distance improvement required before the detected stage switches
	StageHysteresis = 10.0

	// MaxStages caps sequential descriptor discovery
	MaxStages = 10

	DefaultStartX = 640.0
	DefaultStartY = 550.0
)
