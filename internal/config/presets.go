package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/san-kum/loopsim/internal/loop"
)

var ErrUnknownPreset = errors.New("unknown preset")

type Preset struct {
	Name        string
	Description string
	Params      loop.Parameters
}

func preset(name, desc string, tune func(*loop.Parameters)) Preset {
	p := loop.DefaultParameters()
	tune(&p)
	return Preset{Name: name, Description: desc, Params: p}
}

var Presets = map[string]Preset{
	"default": preset("default", "built-in defaults", func(*loop.Parameters) {}),
	"showcase": preset("showcase", "wider loop used for exported samples", func(p *loop.Parameters) {
		p.Radius = 120
		p.Elasticity = 0.65
		p.Fluidity = 0.55
		p.Inertia = 0.4
		p.Softening = 0.25
	}),
	"jelly": preset("jelly", "loose, underdamped, heavy squash", func(p *loop.Parameters) {
		p.Elasticity = 0.3
		p.Fluidity = 0.15
		p.Inertia = 0.6
		p.Softening = 0.7
	}),
	"rigid": preset("rigid", "stiff and well damped, no squash", func(p *loop.Parameters) {
		p.Elasticity = 0.95
		p.Fluidity = 0.9
		p.Inertia = 0.1
		p.Softening = 0
	}),
	"heavy": preset("heavy", "heading lags behind the tangent", func(p *loop.Parameters) {
		p.Inertia = 0.95
		p.Softening = 0.3
	}),
	"double": preset("double", "two revolutions over three seconds", func(p *loop.Parameters) {
		p.DurationSeconds = 3
		p.Loops = 2
	}),
}

func GetPreset(name string) (Preset, error) {
	p, ok := Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	return slices.Sorted(maps.Keys(Presets))
}
