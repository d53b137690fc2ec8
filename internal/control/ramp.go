package control

import "github.com/san-kum/loopsim/internal/dynamo"

// Ramp targets origin + rate·t with a constant rate.
type Ramp struct {
	Origin float64
	Rate   float64
}

func NewRamp(origin, rate float64) *Ramp {
	return &Ramp{Origin: origin, Rate: rate}
}

func (r *Ramp) Compute(x dynamo.State, t float64) dynamo.Control {
	return dynamo.Control{r.Origin + float64(r.Rate*t), r.Rate}
}
