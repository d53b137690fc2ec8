package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// writeHTML renders a page with the trajectory and the scale factors over
// time. Assets load from the default go-echarts host.
func writeHTML(w io.Writer, doc Document) error {
	pad := doc.Params.Radius * 1.2
	if pad <= 0 {
		pad = 1
	}

	path := make([]opts.ScatterData, 0, len(doc.Frames))
	for _, f := range doc.Frames {
		path = append(path, opts.ScatterData{Value: []interface{}{f.X, f.Y, f.Index}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Loop", Theme: "dark", Width: "720px", Height: "720px"}),
		charts.WithTitleOpts(opts.Title{Title: "Trajectory", Subtitle: fmt.Sprintf("frames=%d loops=%d", len(doc.Frames), doc.Params.Loops)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: doc.Params.CenterX - pad, Max: doc.Params.CenterX + pad, Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Min: doc.Params.CenterY - pad, Max: doc.Params.CenterY + pad, Name: "y"}),
	)
	scatter.AddSeries("position", path, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))

	times := make([]string, 0, len(doc.Frames))
	tangent := make([]opts.LineData, 0, len(doc.Frames))
	normal := make([]opts.LineData, 0, len(doc.Frames))
	for _, f := range doc.Frames {
		times = append(times, strconv.FormatFloat(f.Time, 'f', 3, 64))
		tangent = append(tangent, opts.LineData{Value: f.ScaleTangent})
		normal = append(normal, opts.LineData{Value: f.ScaleNormal})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "dark", Width: "900px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Squash and stretch"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t (s)"}),
	)
	line.SetXAxis(times).
		AddSeries("scale_tangent", tangent).
		AddSeries("scale_normal", normal)

	page := components.NewPage()
	page.PageTitle = "Loop export"
	page.AddCharts(scatter, line)
	return page.Render(w)
}
