// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"rnahelix/pkg/api"
)

// encodePretty writes v as indented JSON to w.
func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSON writes a single JSON array of v1 records (pretty-indented).
func WriteJSON(w io.Writer, list []api.RecordV1) error {
	if list == nil {
		list = []api.RecordV1{}
	}
	return encodePretty(w, list)
}

func WriteSummaryJSON(w io.Writer, s api.SummaryV1) error {
	return encodePretty(w, s)
}
