package main

import (
	"github.com/spf13/pflag"

	"github.com/san-kum/loopsim/internal/config"
	"github.com/san-kum/loopsim/internal/loop"
)

var flagParams loop.Parameters

// paramSetters copies one flag's value into a Parameters, keyed by flag name.
var paramSetters = map[string]func(p *loop.Parameters){
	"duration":       func(p *loop.Parameters) { p.DurationSeconds = flagParams.DurationSeconds },
	"fps":            func(p *loop.Parameters) { p.FPS = flagParams.FPS },
	"radius":         func(p *loop.Parameters) { p.Radius = flagParams.Radius },
	"center-x":       func(p *loop.Parameters) { p.CenterX = flagParams.CenterX },
	"center-y":       func(p *loop.Parameters) { p.CenterY = flagParams.CenterY },
	"phase0":         func(p *loop.Parameters) { p.Phase0 = flagParams.Phase0 },
	"elasticity":     func(p *loop.Parameters) { p.Elasticity = flagParams.Elasticity },
	"fluidity":       func(p *loop.Parameters) { p.Fluidity = flagParams.Fluidity },
	"inertia":        func(p *loop.Parameters) { p.Inertia = flagParams.Inertia },
	"softening":      func(p *loop.Parameters) { p.Softening = flagParams.Softening },
	"loops":          func(p *loop.Parameters) { p.Loops = flagParams.Loops },
	"pre-roll-loops": func(p *loop.Parameters) { p.PreRollLoops = flagParams.PreRollLoops },
}

func addParamFlags(fs *pflag.FlagSet) {
	fs.Float64Var(&flagParams.DurationSeconds, "duration", loop.DefaultDuration, "loop duration in seconds")
	fs.IntVar(&flagParams.FPS, "fps", loop.DefaultFPS, "frames per second")
	fs.Float64Var(&flagParams.Radius, "radius", loop.DefaultRadius, "circle radius")
	fs.Float64Var(&flagParams.CenterX, "center-x", 0, "circle centre x")
	fs.Float64Var(&flagParams.CenterY, "center-y", 0, "circle centre y")
	fs.Float64Var(&flagParams.Phase0, "phase0", 0, "starting angle in radians")
	fs.Float64Var(&flagParams.Elasticity, "elasticity", loop.DefaultElasticity, "angle tracker stiffness [0,1]")
	fs.Float64Var(&flagParams.Fluidity, "fluidity", loop.DefaultFluidity, "damping [0,1]")
	fs.Float64Var(&flagParams.Inertia, "inertia", loop.DefaultInertia, "heading lag [0,1]")
	fs.Float64Var(&flagParams.Softening, "softening", loop.DefaultSoftening, "squash and stretch amount [0,1]")
	fs.IntVar(&flagParams.Loops, "loops", loop.DefaultLoops, "revolutions per period")
	fs.IntVar(&flagParams.PreRollLoops, "pre-roll-loops", loop.DefaultPreRollLoops, "unrecorded warm-up revolutions")
}

// legacyFlagNames maps the older knob spellings onto the current flags.
func legacyFlagNames(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "elasticidade":
		name = "elasticity"
	case "fluidez":
		name = "fluidity"
	case "inercia":
		name = "inertia"
	case "amolecimento":
		name = "softening"
	case "pre_roll_loops":
		name = "pre-roll-loops"
	}
	return pflag.NormalizedName(name)
}

// resolveParams layers defaults, preset, config file and explicitly set
// flags, in that order. fallbackPreset applies when neither --preset nor the
// config file names one.
func resolveParams(fs *pflag.FlagSet, fallbackPreset string) (*config.Config, error) {
	cfg, err := config.LoadWithPreset(configFile, presetName)
	if err != nil {
		return nil, err
	}
	if presetName == "" && cfg.Preset == "" && fallbackPreset != "" {
		if cfg, err = config.LoadWithPreset(configFile, fallbackPreset); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *pflag.Flag) {
		if set, ok := paramSetters[f.Name]; ok {
			set(&cfg.Params)
		}
	})
	return cfg, nil
}
