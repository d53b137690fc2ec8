package metrics

import (
	"math"

	"github.com/san-kum/loopsim/internal/loop"
)

// Reciprocity is the largest |tangent·normal - 1| seen.
type Reciprocity struct {
	worst float64
}

func NewReciprocity() *Reciprocity { return &Reciprocity{} }

func (r *Reciprocity) Name() string { return "reciprocity_error" }

func (r *Reciprocity) Observe(f loop.Frame) {
	r.worst = math.Max(r.worst, math.Abs(f.ScaleTangent*f.ScaleNormal-1))
}

func (r *Reciprocity) Value() float64 { return r.worst }

func (r *Reciprocity) Reset() { r.worst = 0 }

// ClampedFrames counts frames with either scale factor pinned to a bound.
type ClampedFrames struct {
	lo, hi float64
	count  int
}

func NewClampedFrames(lo, hi float64) *ClampedFrames {
	return &ClampedFrames{lo: lo, hi: hi}
}

func (c *ClampedFrames) Name() string { return "clamped_frames" }

func (c *ClampedFrames) Observe(f loop.Frame) {
	if c.pinned(f.ScaleTangent) || c.pinned(f.ScaleNormal) {
		c.count++
	}
}

func (c *ClampedFrames) pinned(v float64) bool {
	return v <= c.lo || v >= c.hi
}

func (c *ClampedFrames) Value() float64 { return float64(c.count) }

func (c *ClampedFrames) Reset() { c.count = 0 }
