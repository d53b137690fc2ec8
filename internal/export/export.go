// Package export writes generated loops to files and streams.
//
// Every sink takes a [Document] and an [io.Writer]. The set of sinks is
// closed: [Format] names them and [Write] dispatches on it.
package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/san-kum/loopsim/internal/loop"
)

var ErrUnknownFormat = errors.New("unknown export format")

type Format int

const (
	JSON Format = iota
	JSONCompact
	CSV
	SVG
	PNG
	HTML
)

var formatNames = [...]string{
	JSON:        "json",
	JSONCompact: "json-compact",
	CSV:         "csv",
	SVG:         "svg",
	PNG:         "png",
	HTML:        "html",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Formats lists every format name in declaration order.
func Formats() []string {
	return slices.Clone(formatNames[:])
}

func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatForPath picks the format from the file extension. Unknown or
// missing extensions fall back to pretty JSON.
func FormatForPath(path string) Format {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if f, err := ParseFormat(ext); err == nil {
		return f
	}
	return JSON
}

// Document is what every sink serialises.
type Document struct {
	Params loop.Parameters `json:"params"`
	Frames []loop.Frame    `json:"frames"`
}

func NewDocument(p loop.Parameters) Document {
	return Document{Params: p, Frames: loop.Generate(p)}
}

// Write encodes doc to w. Sequences holding NaN or Inf are refused with an
// error wrapping dynamo.ErrInvalidState.
func Write(w io.Writer, format Format, doc Document) error {
	if err := loop.CheckFinite(doc.Frames); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}

	switch format {
	case JSON:
		return writeJSON(w, doc, true)
	case JSONCompact:
		return writeJSON(w, doc, false)
	case CSV:
		return writeCSV(w, doc.Frames)
	case SVG:
		return writeSVG(w, doc.Frames, svgWidth, svgHeight)
	case PNG:
		return writePNG(w, doc)
	case HTML:
		return writeHTML(w, doc)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}
