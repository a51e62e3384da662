package stage

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/lixenwraith/hell-escape/component"
	"github.com/lixenwraith/hell-escape/parameter"
	"github.com/lixenwraith/hell-escape/vmath"
)

// GoalSideY returns the goal-side floor of a stage in its own coordinates: the topmost platform
func GoalSideY(d *Descriptor) float64 {
	y := math.Inf(1)
	for _, p := range d.Platforms {
		y = math.Min(y, p.Y)
	}
	return y
}

// EntryY returns the entry platform of a stage in its own coordinates: the lowest platform
func EntryY(d *Descriptor) float64 {
	y := math.Inf(-1)
	for _, p := range d.Platforms {
		y = math.Max(y, p.Y)
	}
	return y
}

// StitchDelta returns the offset increment that places cur's entry platform gap pixels above prev's goal side
func StitchDelta(prev, cur *Descriptor, gap float64) float64 {
	return (GoalSideY(prev) - gap) - EntryY(cur)
}

// Assemble stitches descriptors bottom-up into one world
// Descriptors must already be validated; the order is the stage order
func Assemble(descs []Descriptor) (*Layout, error) {
	if len(descs) == 0 {
		return nil, fmt.Errorf("assemble: %w", ErrNoPlatforms)
	}

	l := &Layout{Stages: make([]Placed, 0, len(descs))}
	offset := 0.0

	for i := range descs {
		d := &descs[i]
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("assemble stage %d: %w", i+1, err)
		}
		if i > 0 {
			offset += StitchDelta(&descs[i-1], d, parameter.StageJumpGap)
		}

		placed := Placed{
			Index:       i + 1,
			Name:        d.StageName,
			Offset:      offset,
			Range:       Range{MinY: math.Inf(1), MaxY: math.Inf(-1)},
			Backgrounds: normalizeLayers(d.Layers(), i+1),
		}
		if placed.Name == "" {
			placed.Name = fmt.Sprintf("Stage %d", i+1)
		}

		for _, p := range d.Platforms {
			r := vmath.Rect{X: p.X, Y: p.Y + offset, W: p.W, H: p.H}
			l.Platforms = append(l.Platforms, &component.Platform{Rect: r})
			placed.Range.MinY = math.Min(placed.Range.MinY, r.Top())
			placed.Range.MaxY = math.Max(placed.Range.MaxY, r.Bottom())
		}

		start := vmath.Vec{X: parameter.DefaultStartX, Y: parameter.DefaultStartY}
		if d.PlayerStart != nil {
			start = vmath.Vec{X: d.PlayerStart.X, Y: d.PlayerStart.Y}
		}
		start.Y += offset
		placed.Start = start

		for j, spec := range d.Obstacles {
			obs, err := BuildObstacle(spec, offset)
			if err != nil {
				log.Printf("[stage] stage %d obstacle %d skipped: %v", i+1, j, err)
				continue
			}
			switch o := obs.(type) {
			case *component.Platform:
				l.Platforms = append(l.Platforms, o)
				continue
			case *component.Goal:
				if placed.Goal == nil {
					g := o.Rect
					placed.Goal = &g
				}
			}
			l.Obstacles = append(l.Obstacles, obs)
		}

		l.Stages = append(l.Stages, placed)
	}

	l.Bounds = computeBounds(l.Platforms)
	return l, nil
}

func computeBounds(platforms []*component.Platform) Bounds {
	minY, maxY, maxX := math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range platforms {
		minY = math.Min(minY, p.Top())
		maxY = math.Max(maxY, p.Bottom())
		maxX = math.Max(maxX, p.Right())
	}
	return Bounds{
		MinY: minY - parameter.WorldBoundsMargin,
		MaxY: maxY + parameter.WorldBoundsMargin,
		MaxX: maxX + parameter.WorldBoundsMargin,
	}
}

// BuildObstacle converts a descriptor entry to a world obstacle shifted by offsetY
func BuildObstacle(spec ObstacleSpec, offsetY float64) (component.Obstacle, error) {
	kind, homing, ok := component.ParseKind(spec.Type)
	if !ok {
		return nil, fmt.Errorf("unknown obstacle type %q", spec.Type)
	}
	r := vmath.Rect{X: spec.X, Y: spec.Y + offsetY, W: spec.W, H: spec.H}

	switch kind {
	case component.KindPlatform:
		return &component.Platform{Rect: r}, nil
	case component.KindLethalFloor:
		return &component.LethalFloor{Rect: r}, nil
	case component.KindIceFloor:
		return &component.IceFloor{Rect: r}, nil
	case component.KindWall:
		return &component.Wall{Rect: r}, nil
	case component.KindGoal:
		return &component.Goal{Rect: r}, nil
	case component.KindSpring:
		force := spec.Force
		if force == 0 {
			force = parameter.SpringDefaultForce
		}
		dir, ok := component.ParseDirection(spec.Direction, component.DirRight)
		if !ok || dir == component.DirHoming {
			return nil, fmt.Errorf("spring direction %q not supported", spec.Direction)
		}
		return &component.Spring{Rect: r, Force: force, Direction: dir}, nil
	case component.KindCannon:
		rate := spec.Rate
		if rate <= 0 {
			rate = parameter.CannonDefaultRateMs
		}
		dir, ok := component.ParseDirection(spec.Dir, component.DirLeft)
		if !ok {
			return nil, fmt.Errorf("cannon direction %q not supported", spec.Dir)
		}
		if homing {
			dir = component.DirHoming
		}
		return &component.Cannon{
			Rect:      r,
			FireRate:  time.Duration(rate * float64(time.Millisecond)),
			Direction: dir,
		}, nil
	case component.KindTeleporter:
		if spec.TargetStage < 1 {
			return nil, fmt.Errorf("teleporter target stage %d invalid", spec.TargetStage)
		}
		return &component.Teleporter{Rect: r, TargetStage: spec.TargetStage}, nil
	}
	return nil, fmt.Errorf("obstacle type %q is runtime-only", spec.Type)
}
