package loop

import "encoding/json"

const (
	DefaultDuration     = 2.0
	DefaultFPS          = 60
	DefaultRadius       = 100.0
	DefaultElasticity   = 0.5
	DefaultFluidity     = 0.5
	DefaultInertia      = 0.5
	DefaultSoftening    = 0.2
	DefaultLoops        = 1
	DefaultPreRollLoops = 3
)

// Parameters is the immutable input of one generation pass.
type Parameters struct {
	DurationSeconds float64 `json:"duration_seconds" yaml:"duration_seconds"`
	FPS             int     `json:"fps" yaml:"fps"`
	Radius          float64 `json:"radius" yaml:"radius"`
	CenterX         float64 `json:"center_x" yaml:"center_x"`
	CenterY         float64 `json:"center_y" yaml:"center_y"`
	Phase0          float64 `json:"phase0_rad" yaml:"phase0_rad"`
	Elasticity      float64 `json:"elasticity" yaml:"elasticity"`
	Fluidity        float64 `json:"fluidity" yaml:"fluidity"`
	Inertia         float64 `json:"inertia" yaml:"inertia"`
	Softening       float64 `json:"softening" yaml:"softening"`
	Loops           int     `json:"loops" yaml:"loops"`
	PreRollLoops    int     `json:"pre_roll_loops" yaml:"pre_roll_loops"`
}

func DefaultParameters() Parameters {
	return Parameters{
		DurationSeconds: DefaultDuration,
		FPS:             DefaultFPS,
		Radius:          DefaultRadius,
		Elasticity:      DefaultElasticity,
		Fluidity:        DefaultFluidity,
		Inertia:         DefaultInertia,
		Softening:       DefaultSoftening,
		Loops:           DefaultLoops,
		PreRollLoops:    DefaultPreRollLoops,
	}
}

// legacyKnobs holds the knob names older clients still send.
type legacyKnobs struct {
	Elasticidade *float64 `json:"elasticidade"`
	Fluidez      *float64 `json:"fluidez"`
	Inercia      *float64 `json:"inercia"`
	Amolecimento *float64 `json:"amolecimento"`
}

type parametersJSON Parameters

// UnmarshalJSON decodes on top of the receiver's current values, so fields
// missing from data keep whatever the caller preset (usually the defaults).
// Legacy knob keys are honoured; the canonical key wins when both appear.
func (p *Parameters) UnmarshalJSON(data []byte) error {
	var legacy legacyKnobs
	if err := json.Unmarshal(data, &legacy); err != nil {
		return err
	}
	if legacy.Elasticidade != nil {
		p.Elasticity = *legacy.Elasticidade
	}
	if legacy.Fluidez != nil {
		p.Fluidity = *legacy.Fluidez
	}
	if legacy.Inercia != nil {
		p.Inertia = *legacy.Inercia
	}
	if legacy.Amolecimento != nil {
		p.Softening = *legacy.Amolecimento
	}
	return json.Unmarshal(data, (*parametersJSON)(p))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
