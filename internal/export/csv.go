package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/loopsim/internal/loop"
)

var csvHeader = []string{
	"index", "time", "x", "y", "travel_angle", "orientation", "scale_tangent", "scale_normal",
}

func writeCSV(w io.Writer, frames []loop.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	ff := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, f := range frames {
		rec := []string{
			strconv.Itoa(f.Index),
			ff(f.Time), ff(f.X), ff(f.Y),
			ff(f.TravelAngle), ff(f.Orientation),
			ff(f.ScaleTangent), ff(f.ScaleNormal),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
