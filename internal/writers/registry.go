// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"rnahelix/internal/output"
	"rnahelix/pkg/api"
)

// RecordWriter writes a complete (buffered) list of records.
type RecordWriter func(w io.Writer, list []api.RecordV1, header bool) error

// SummaryWriter writes the aggregate histograms.
type SummaryWriter func(w io.Writer, s api.SummaryV1, header bool) error

// Writer registries (format → handler). Last registration wins.
var (
	RecordWriters  = map[string]RecordWriter{}
	SummaryWriters = map[string]SummaryWriter{}
)

func RegisterRecord(format string, fn RecordWriter)   { RecordWriters[format] = fn }
func RegisterSummary(format string, fn SummaryWriter) { SummaryWriters[format] = fn }

func init() {
	RegisterRecord(output.FormatText, output.WriteText)
	RegisterRecord(output.FormatJSON, func(w io.Writer, list []api.RecordV1, _ bool) error {
		return output.WriteJSON(w, list)
	})
	RegisterRecord(output.FormatJSONL, func(w io.Writer, list []api.RecordV1, _ bool) error {
		return WriteJSONL(w, list)
	})

	RegisterSummary(output.FormatText, output.WriteSummaryText)
	summaryJSON := func(w io.Writer, s api.SummaryV1, _ bool) error { return output.WriteSummaryJSON(w, s) }
	RegisterSummary(output.FormatJSON, summaryJSON)
	RegisterSummary(output.FormatJSONL, summaryJSON)
}

// WriteRecords dispatches to the writer registered for format.
func WriteRecords(format string, w io.Writer, list []api.RecordV1, header bool) error {
	fn, ok := RecordWriters[format]
	if !ok {
		return fmt.Errorf("unknown record format %q (no writer registered)", format)
	}
	return fn(w, list, header)
}

func WriteSummary(format string, w io.Writer, s api.SummaryV1, header bool) error {
	fn, ok := SummaryWriters[format]
	if !ok {
		return fmt.Errorf("unknown summary format %q (no writer registered)", format)
	}
	return fn(w, s, header)
}
