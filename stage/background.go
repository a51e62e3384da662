package stage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// BackgroundLayer is one image drawn behind a stage
type BackgroundLayer struct {
	Path     string  `json:"path" yaml:"path"`
	Parallax float64 `json:"parallax,omitempty" yaml:"parallax,omitempty"`
	YOffset  float64 `json:"yOffset,omitempty" yaml:"yOffset,omitempty"`
	RepeatX  bool    `json:"repeatX,omitempty" yaml:"repeatX,omitempty"`
	VAlign   string  `json:"vAlign,omitempty" yaml:"vAlign,omitempty"`
}

// layerFields avoids recursion into the custom unmarshalers
type layerFields BackgroundLayer

// UnmarshalJSON accepts a bare path string or a layer object
func (l *BackgroundLayer) UnmarshalJSON(data []byte) error {
	var p string
	if err := json.Unmarshal(data, &p); err == nil {
		*l = BackgroundLayer{Path: p}
		return nil
	}
	var f layerFields
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("background layer: %w", err)
	}
	*l = BackgroundLayer(f)
	return nil
}

// UnmarshalYAML accepts a bare path scalar or a layer mapping
func (l *BackgroundLayer) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*l = BackgroundLayer{Path: value.Value}
		return nil
	case yaml.MappingNode:
		var f layerFields
		if err := value.Decode(&f); err != nil {
			return fmt.Errorf("background layer: %w", err)
		}
		*l = BackgroundLayer(f)
		return nil
	default:
		return fmt.Errorf("background layer: unexpected node kind %d", value.Kind)
	}
}

// Backgrounds is a layer list that also decodes from a single string or object
type Backgrounds []BackgroundLayer

// UnmarshalJSON accepts a string, an array of strings/objects, or one object
func (b *Backgrounds) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*b = nil
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var layers []BackgroundLayer
		if err := json.Unmarshal(trimmed, &layers); err != nil {
			return err
		}
		*b = layers
		return nil
	}
	var one BackgroundLayer
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return err
	}
	*b = Backgrounds{one}
	return nil
}

// UnmarshalYAML accepts a scalar, a sequence, or one mapping
func (b *Backgrounds) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		layers := make([]BackgroundLayer, 0, len(value.Content))
		for _, n := range value.Content {
			var l BackgroundLayer
			if err := n.Decode(&l); err != nil {
				return err
			}
			layers = append(layers, l)
		}
		*b = layers
		return nil
	}
	var one BackgroundLayer
	if err := value.Decode(&one); err != nil {
		return err
	}
	*b = Backgrounds{one}
	return nil
}

// normalizeLayers applies layer defaults and drops entries without a path
// Falls back to the convention path when nothing is declared
func normalizeLayers(declared []BackgroundLayer, index int) []BackgroundLayer {
	if len(declared) == 0 {
		return []BackgroundLayer{{Path: fmt.Sprintf("background/background%d.jpg", index), VAlign: "bottom"}}
	}
	out := make([]BackgroundLayer, 0, len(declared))
	for _, l := range declared {
		if l.Path == "" {
			continue
		}
		if l.VAlign == "" {
			l.VAlign = "bottom"
		}
		out = append(out, l)
	}
	return out
}
