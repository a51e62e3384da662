package parameter

// Canvas dimensions in world pixels
const (
	CanvasWidth  = 1280.0
	CanvasHeight = 720.0
)

// Camera follow
const (
	// CameraLeadRatio places the player this fraction down the viewport
	CameraLeadRatio = 0.6

	// CameraSmoothing is the per-reference-frame interpolation factor toward the target
	CameraSmoothing = 0.1
)
