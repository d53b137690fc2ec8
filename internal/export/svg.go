package export

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/san-kum/loopsim/internal/loop"
)

const (
	svgWidth  = 600
	svgHeight = 600

	// tickEvery frames gets a heading tick.
	tickEvery  = 6
	tickLength = 14.0
)

// writeSVG draws the trajectory as one path and marks the heading with short
// ticks. Both axes share one scale so circles stay round; y points up.
func writeSVG(w io.Writer, frames []loop.Frame, width, height int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	if len(frames) > 0 {
		minX, maxX := frames[0].X, frames[0].X
		minY, maxY := frames[0].Y, frames[0].Y
		for _, f := range frames {
			minX = math.Min(minX, f.X)
			maxX = math.Max(maxX, f.X)
			minY = math.Min(minY, f.Y)
			maxY = math.Max(maxY, f.Y)
		}

		span := math.Max(maxX-minX, maxY-minY)
		if span == 0 {
			span = 1
		}
		pad := span * 0.1
		scale := math.Min(float64(width), float64(height)) / (span + 2*pad)
		midX, midY := (minX+maxX)/2, (minY+maxY)/2

		px := func(x float64) float64 { return float64(width)/2 + (x-midX)*scale }
		py := func(y float64) float64 { return float64(height)/2 - (y-midY)*scale }

		fmt.Fprint(bw, `<path fill="none" stroke="#00ff88" stroke-width="1.5" d="`)
		for i, f := range frames {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			fmt.Fprintf(bw, "%s%.1f,%.1f ", cmd, px(f.X), py(f.Y))
		}
		fmt.Fprint(bw, "Z\"/>\n<g stroke=\"#ff6600\" stroke-width=\"1\">\n")

		for i := 0; i < len(frames); i += tickEvery {
			f := frames[i]
			x0, y0 := px(f.X), py(f.Y)
			x1 := x0 + tickLength*f.ScaleTangent*math.Cos(f.Orientation)
			y1 := y0 - tickLength*f.ScaleTangent*math.Sin(f.Orientation)
			fmt.Fprintf(bw, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x0, y0, x1, y1)
		}
		fmt.Fprint(bw, "</g>\n")
	}

	fmt.Fprint(bw, "</svg>\n")
	return bw.Flush()
}
