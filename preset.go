package glide

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Preset is a named, declarative animation description loadable from YAML:
//
//	expand:
//	  duration: 250ms
//	  easing: quad-out
//	  properties:
//	    - {name: width, target: 300px}
//	    - {name: height, target: 150px}
//
// Presets let animation timing live in configuration instead of code.
type Preset struct {
	Duration   Duration `yaml:"duration"`
	Easing     string   `yaml:"easing"`
	Properties []Prop   `yaml:"properties"`
}

// Duration is a time.Duration that unmarshals from YAML strings like
// "250ms" or "1.5s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// LoadPresets parses a YAML document mapping preset names to presets.
func LoadPresets(data []byte) (map[string]Preset, error) {
	var out map[string]Preset
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	return out, nil
}

// Options converts the preset's timing into animation Options. Callbacks,
// scheduler, and logger stay at their zero values; set them on the result
// as needed.
func (p Preset) Options() Options {
	return Options{
		Duration:   time.Duration(p.Duration),
		EasingName: p.Easing,
	}
}

// Animate runs the preset against one element.
func (p Preset) Animate(el Element) (*Animation, error) {
	return Animate(el, p.Properties, p.Options())
}
