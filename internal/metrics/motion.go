package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/loopsim/internal/loop"
)

// StepRegularity is the coefficient of variation of the per-frame angle
// increment. A fully settled loop scores close to zero.
type StepRegularity struct {
	inc increments
}

func NewStepRegularity() *StepRegularity { return &StepRegularity{} }

func (s *StepRegularity) Name() string { return "step_regularity" }

func (s *StepRegularity) Observe(f loop.Frame) { s.inc.observe(f.TravelAngle) }

func (s *StepRegularity) Value() float64 {
	if len(s.inc.steps) < 2 {
		return 0
	}
	mean, std := stat.MeanStdDev(s.inc.steps, nil)
	if mean == 0 {
		return math.NaN()
	}
	return std / math.Abs(mean)
}

func (s *StepRegularity) Reset() { s.inc.reset() }

// Closure measures how far the frame after the last one, extrapolated
// linearly, lands from the first frame plus the expected revolutions.
type Closure struct {
	loops  int
	first  float64
	prev   float64
	last   float64
	frames int
}

func NewClosure(loops int) *Closure {
	return &Closure{loops: loops}
}

func (c *Closure) Name() string { return "closure_error" }

func (c *Closure) Observe(f loop.Frame) {
	if c.frames == 0 {
		c.first = f.TravelAngle
	}
	c.prev = c.last
	c.last = f.TravelAngle
	c.frames++
}

func (c *Closure) Value() float64 {
	if c.frames < 2 {
		return 0
	}
	next := 2*c.last - c.prev
	return math.Abs(next - c.first - 2*math.Pi*float64(c.loops))
}

func (c *Closure) Reset() {
	c.first, c.prev, c.last = 0, 0, 0
	c.frames = 0
}

// Reversals counts frames whose travel angle failed to increase.
type Reversals struct {
	inc increments
}

func NewReversals() *Reversals { return &Reversals{} }

func (r *Reversals) Name() string { return "reversals" }

func (r *Reversals) Observe(f loop.Frame) { r.inc.observe(f.TravelAngle) }

func (r *Reversals) Value() float64 {
	n := 0
	for _, d := range r.inc.steps {
		if d <= 0 {
			n++
		}
	}
	return float64(n)
}

func (r *Reversals) Reset() { r.inc.reset() }

// HeadingLead is the mean of orientation minus travel angle.
type HeadingLead struct {
	leads []float64
}

func NewHeadingLead() *HeadingLead { return &HeadingLead{} }

func (h *HeadingLead) Name() string { return "heading_lead" }

func (h *HeadingLead) Observe(f loop.Frame) {
	h.leads = append(h.leads, f.Orientation-f.TravelAngle)
}

func (h *HeadingLead) Value() float64 {
	if len(h.leads) == 0 {
		return 0
	}
	return stat.Mean(h.leads, nil)
}

func (h *HeadingLead) Reset() { h.leads = h.leads[:0] }
