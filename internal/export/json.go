package export

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, doc Document, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(doc)
}
