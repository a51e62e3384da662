package system

import (
	"time"

	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/parameter"
)

// CameraSystem eases the camera toward the player after collisions settle
type CameraSystem struct {
	ctx *engine.GameContext
}

// NewCameraSystem creates the camera follow system
func NewCameraSystem(ctx *engine.GameContext) *CameraSystem {
	return &CameraSystem{ctx: ctx}
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

func (s *CameraSystem) Update(dt time.Duration) {
	if s.ctx.Player == nil || s.ctx.Layout == nil {
		return
	}
	s.ctx.Camera.Follow(s.ctx.Player.Hitbox(), s.ctx.Layout.Bounds, engine.FrameScale(dt))
}
