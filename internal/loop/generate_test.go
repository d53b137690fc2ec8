package loop_test

import (
	"math"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/loopsim/internal/loop"
)

func increments(frames []loop.Frame) []float64 {
	d := make([]float64, 0, len(frames)-1)
	for i := 1; i < len(frames); i++ {
		d = append(d, frames[i].TravelAngle-frames[i-1].TravelAngle)
	}
	return d
}

func meanStd(xs []float64) (mean, std float64) {
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	for _, x := range xs {
		std += (x - mean) * (x - mean)
	}
	return mean, math.Sqrt(std / float64(len(xs)))
}

var _ = Describe("Generate", func() {
	var p loop.Parameters

	BeforeEach(func() {
		p = loop.DefaultParameters()
	})

	DescribeTable("emits max(1, round(duration*fps)) frames",
		func(duration float64, fps, want int) {
			p.DurationSeconds = duration
			p.FPS = fps
			Expect(loop.Generate(p)).To(HaveLen(want))
		},
		Entry("defaults", 2.0, 60, 120),
		Entry("fractional", 1.01, 30, 30),
		Entry("half rounds to even", 2.5, 1, 2),
		Entry("tiny duration", 0.001, 1, 1),
		Entry("zero duration", 0.0, 60, 1),
		Entry("negative duration", -3.0, 60, 1),
		Entry("fps floored to 1", 4.0, 0, 4),
	)

	It("numbers frames from 0 and starts the clock at 0", func() {
		frames := loop.Generate(p)
		for i, f := range frames {
			Expect(f.Index).To(Equal(i))
		}
		Expect(frames[0].Time).To(Equal(0.0))
		Expect(frames[1].Time).To(BeNumerically("~", 1.0/60, 1e-15))
	})

	It("yields a single frame at t=0 for a degenerate duration", func() {
		p.DurationSeconds = 0.001
		p.FPS = 1
		frames := loop.Generate(p)
		Expect(frames).To(HaveLen(1))
		Expect(frames[0].Time).To(Equal(0.0))
	})

	It("is deterministic", func() {
		p.Elasticity = 0.8
		p.Fluidity = 0.2
		p.Softening = 0.7
		a := loop.Generate(p)
		b := loop.Generate(p)
		Expect(cmp.Diff(a, b)).To(BeEmpty())
	})

	Context("with pre-roll and default damping", func() {
		It("records steady-state motion with constant angle increments", func() {
			p.Loops = 1
			p.DurationSeconds = 2.0
			p.FPS = 60
			p.PreRollLoops = 3

			mean, std := meanStd(increments(loop.Generate(p)))
			Expect(mean).To(BeNumerically("~", 2*math.Pi/120, 1e-9))
			Expect(std / mean).To(BeNumerically("<", 1e-6))
		})

		It("closes the loop one period after the first frame", func() {
			for _, loops := range []int{1, 2, 3} {
				p.Loops = loops
				frames := loop.Generate(p)
				n := len(frames)
				next := 2*frames[n-1].TravelAngle - frames[n-2].TravelAngle
				Expect(next - frames[0].TravelAngle).To(BeNumerically("~", 2*math.Pi*float64(loops), 1e-6))
			}
		})

		It("lands the first frame one step past phase0", func() {
			p.Phase0 = 0.75
			frames := loop.Generate(p)
			tl := loop.Plan(p)
			Expect(frames[0].TravelAngle).To(BeNumerically("~", 0.75+tl.OmegaTarget*tl.Dt, 1e-6))
		})

		It("keeps the heading on the tangent, one step ahead", func() {
			frames := loop.Generate(p)
			tl := loop.Plan(p)
			lead := math.Pi/2 + tl.OmegaTarget*tl.Dt
			for _, f := range frames {
				Expect(f.Orientation - f.TravelAngle).To(BeNumerically("~", lead, 1e-3))
			}
		})
	})

	It("starts in steady state when there is no pre-roll", func() {
		p.PreRollLoops = 0
		p.Fluidity = 0
		mean, std := meanStd(increments(loop.Generate(p)))
		Expect(std / mean).To(BeNumerically("<", 1e-9))
	})

	It("leaves a visible transient when pre-roll is short and damping low", func() {
		p.Fluidity = 0.1
		p.Elasticity = 0.2
		p.PreRollLoops = 1
		_, std := meanStd(increments(loop.Generate(p)))
		Expect(std).To(BeNumerically(">", 1e-3))
	})

	DescribeTable("never reverses the travel angle",
		func(elasticity, fluidity float64) {
			p.Elasticity = elasticity
			p.Fluidity = fluidity
			for _, d := range increments(loop.Generate(p)) {
				Expect(d).To(BeNumerically(">=", 0))
			}
		},
		Entry("defaults", 0.5, 0.5),
		Entry("stiff and damped", 1.0, 1.0),
		Entry("lightly damped", 0.5, 0.3),
		Entry("slack", 0.0, 0.5),
	)

	DescribeTable("keeps both scale factors within [0.4, 2.5]",
		func(softening, fluidity float64, preRoll int) {
			p.Softening = softening
			p.Fluidity = fluidity
			p.PreRollLoops = preRoll
			for _, f := range loop.Generate(p) {
				Expect(f.ScaleTangent).To(BeNumerically(">=", 0.4))
				Expect(f.ScaleTangent).To(BeNumerically("<=", 2.5))
				Expect(f.ScaleNormal).To(BeNumerically(">=", 0.4))
				Expect(f.ScaleNormal).To(BeNumerically("<=", 2.5))
				Expect(f.ScaleTangent * f.ScaleNormal).To(BeNumerically("~", 1.0, 1e-12))
			}
		},
		Entry("defaults", 0.2, 0.5, 3),
		Entry("max softening, transient", 1.0, 0.0, 0),
		Entry("max softening, underdamped pre-roll", 1.0, 0.05, 1),
		Entry("softening out of range", 7.0, 0.1, 1),
	)

	It("disables squash and stretch at zero softening", func() {
		p.Softening = 0
		p.Fluidity = 0.05
		p.PreRollLoops = 1
		for _, f := range loop.Generate(p) {
			Expect(f.ScaleTangent).To(Equal(1.0))
			Expect(f.ScaleNormal).To(Equal(1.0))
		}
	})

	It("sits on the clamp boundary when the radius is zero", func() {
		p.Radius = 0
		p.Softening = 1
		p.CenterX, p.CenterY = 3, -4
		frames := loop.Generate(p)
		Expect(loop.CheckFinite(frames)).To(Succeed())
		for _, f := range frames {
			Expect(f.X).To(Equal(3.0))
			Expect(f.Y).To(Equal(-4.0))
			Expect(f.ScaleTangent).To(BeNumerically("~", 0.4, 1e-15))
			Expect(f.ScaleNormal).To(BeNumerically("~", 2.5, 1e-15))
			// Both factors at their clamp bounds: still a reciprocal pair.
			Expect(f.ScaleTangent * f.ScaleNormal).To(BeNumerically("~", 1.0, 1e-12))
		}
	})

	It("keeps every point on the circle", func() {
		p.Radius = 42
		p.CenterX = 10
		frames := loop.Generate(p)
		for _, f := range frames {
			Expect(math.Hypot(f.X-10, f.Y)).To(BeNumerically("~", 42, 1e-9))
		}
	})
})
