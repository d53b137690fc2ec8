package export

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const pngSize = 6 * vg.Inch

func writePNG(w io.Writer, doc Document) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("loop r=%g loops=%d", doc.Params.Radius, doc.Params.Loops)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, 0, len(doc.Frames)+1)
	for _, f := range doc.Frames {
		pts = append(pts, plotter.XY{X: f.X, Y: f.Y})
	}
	if len(pts) > 0 {
		pts = append(pts, pts[0])
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("trajectory line: %w", err)
	}
	line.Width = vg.Points(1.5)
	p.Add(line)

	wt, err := p.WriterTo(pngSize, pngSize, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
