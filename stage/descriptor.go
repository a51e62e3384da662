package stage

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoPlatforms rejects a descriptor that cannot be stitched
	ErrNoPlatforms = errors.New("stage has no platforms")
	// ErrNotFound ends sequential discovery
	ErrNotFound = errors.New("stage descriptor not found")
)

// Point is a world position in descriptor coordinates
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// RectSpec is a platform rectangle in descriptor coordinates
type RectSpec struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// ObstacleSpec is one typed obstacle; type-specific fields are ignored by other types
type ObstacleSpec struct {
	Type string  `json:"type" yaml:"type" jsonschema:"enum=platform,enum=lethalFloor,enum=iceFloor,enum=spring,enum=wall,enum=cannon,enum=homingCannon,enum=teleporter,enum=goal"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
	W    float64 `json:"w" yaml:"w"`
	H    float64 `json:"h" yaml:"h"`

	// Spring
	Force     float64 `json:"force,omitempty" yaml:"force,omitempty"`
	Direction string  `json:"direction,omitempty" yaml:"direction,omitempty" jsonschema:"enum=left,enum=right,enum=up"`

	// Cannon
	Rate float64 `json:"rate,omitempty" yaml:"rate,omitempty" jsonschema:"description=Milliseconds between shots"`
	Dir  string  `json:"dir,omitempty" yaml:"dir,omitempty" jsonschema:"enum=left,enum=right,enum=up,enum=down,enum=homing"`

	// Teleporter
	TargetStage int `json:"targetStage,omitempty" yaml:"targetStage,omitempty"`
}

// Descriptor is one authored stage, consumed once at startup
type Descriptor struct {
	StageName   string         `json:"stageName,omitempty" yaml:"stageName,omitempty"`
	PlayerStart *Point         `json:"playerStart,omitempty" yaml:"playerStart,omitempty"`
	Platforms   []RectSpec     `json:"platforms" yaml:"platforms"`
	Obstacles   []ObstacleSpec `json:"obstacles,omitempty" yaml:"obstacles,omitempty"`
	Background  Backgrounds    `json:"background,omitempty" yaml:"background,omitempty"`
	Backgrounds Backgrounds    `json:"backgrounds,omitempty" yaml:"backgrounds,omitempty"`
}

// Layers returns the declared background layers, preferring "background" over "backgrounds"
func (d *Descriptor) Layers() []BackgroundLayer {
	if len(d.Background) > 0 {
		return d.Background
	}
	return d.Backgrounds
}

// Validate checks the fields stitching depends on
func (d *Descriptor) Validate() error {
	if len(d.Platforms) == 0 {
		return ErrNoPlatforms
	}
	for i, p := range d.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("platform %d: non-positive size %gx%g", i, p.W, p.H)
		}
	}
	return nil
}

// Decode parses a descriptor, choosing the format from the file extension
func Decode(name string, data []byte) (Descriptor, error) {
	var d Descriptor
	var err error
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &d)
	default:
		err = json.Unmarshal(data, &d)
	}
	if err != nil {
		return Descriptor{}, fmt.Errorf("parse %s: %w", name, err)
	}
	if err := d.Validate(); err != nil {
		return Descriptor{}, fmt.Errorf("validate %s: %w", name, err)
	}
	return d, nil
}
