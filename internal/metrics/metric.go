// Package metrics scores generated loops.
//
// Every metric consumes frames one at a time through Observe and reports a
// single number. Evaluate runs a set of metrics over a whole sequence.
package metrics

import "github.com/san-kum/loopsim/internal/loop"

type Metric interface {
	Name() string
	Observe(f loop.Frame)
	Value() float64
	Reset()
}

// Result is one named metric value.
type Result struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Evaluate resets each metric, feeds it frames in order and collects the
// values in the order the metrics were given.
func Evaluate(frames []loop.Frame, ms ...Metric) []Result {
	out := make([]Result, 0, len(ms))
	for _, m := range ms {
		m.Reset()
		for _, f := range frames {
			m.Observe(f)
		}
		out = append(out, Result{Name: m.Name(), Value: m.Value()})
	}
	return out
}

// Defaults returns the metric set reported by inspect.
func Defaults(p loop.Parameters) []Metric {
	return []Metric{
		NewStepRegularity(),
		NewClosure(max(1, p.Loops)),
		NewReversals(),
		NewReciprocity(),
		NewClampedFrames(loop.MinScale, loop.MaxScale),
		NewHeadingLead(),
	}
}

// increments tracks consecutive travel-angle differences.
type increments struct {
	prev  float64
	seen  bool
	steps []float64
}

func (in *increments) observe(theta float64) {
	if in.seen {
		in.steps = append(in.steps, theta-in.prev)
	}
	in.prev = theta
	in.seen = true
}

func (in *increments) reset() {
	in.prev = 0
	in.seen = false
	in.steps = in.steps[:0]
}
