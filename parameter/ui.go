package parameter

import "time"

// Terminal key-hold emulation
// Terminals report presses only; a key counts as held until its repeat window lapses
const (
	KeyHoldInitial = 550 * time.Millisecond
	KeyHoldRepeat  = 90 * time.Millisecond
)

// Terminal layout
const (
	SidebarWidth = 30
	HeaderHeight = 1
	FooterHeight = 1
)

// Windowed frontend
// The world is composed at a quarter of canvas resolution and scaled up
const (
	WindowPixelScale = 4
	WindowPixelW     = int(CanvasWidth) / WindowPixelScale
	WindowPixelH     = int(CanvasHeight) / WindowPixelScale
	WindowTitle      = "Hell Escape"
	WindowLineHeight = 16
)

// VolumeStep is the change per volume key press, applied to both channels
const VolumeStep = 0.1
