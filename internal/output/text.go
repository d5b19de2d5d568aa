// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"rnahelix/pkg/api"
)

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

// FormatRowTSV renders one record without the trailing newline.
// Tabs and newlines in the error message are flattened to spaces.
func FormatRowTSV(r api.RecordV1) string {
	errMsg := strings.NewReplacer("\t", " ", "\n", " ").Replace(r.Error)
	return fmt.Sprintf("%s\t%d\t%s\t%s\t%d\t%s\t%s\t%d\t%s",
		r.Source, r.Row, r.ID, r.Structure,
		len(r.Lengths), joinInts(r.Lengths), joinInts(r.PseudoknotLengths),
		r.InteractionLength, errMsg,
	)
}

func WriteRowTSV(w io.Writer, r api.RecordV1) error {
	_, err := fmt.Fprintln(w, FormatRowTSV(r))
	return err
}

// StreamText prints one line per record as records arrive on in.
func StreamText(w io.Writer, in <-chan api.RecordV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if err := WriteRowTSV(w, r); err != nil {
			return err
		}
	}
	return nil
}

func WriteText(w io.Writer, list []api.RecordV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := WriteRowTSV(w, r); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummaryText prints the totals followed by one TSV block per histogram.
func WriteSummaryText(w io.Writer, s api.SummaryV1, header bool) error {
	if _, err := fmt.Fprintf(w, "# records\t%d\n# failed\t%d\n# helices\t%d\n# pk_helices\t%d\n",
		s.Records, s.Failed, s.Helices, s.PseudoknotHelices); err != nil {
		return err
	}
	sections := []struct {
		name string
		bins []api.BinV1
	}{
		{"helices_per_record", s.HelicesPerRecord},
		{"helix_lengths", s.HelixLengths},
		{"pk_lengths", s.PseudoknotLengths},
		{"interaction_lengths", s.InteractionLength},
	}
	for _, sec := range sections {
		if _, err := fmt.Fprintf(w, "\n[%s]\n", sec.name); err != nil {
			return err
		}
		if header {
			if _, err := fmt.Fprintln(w, "lo\thi\tcount"); err != nil {
				return err
			}
		}
		for _, b := range sec.bins {
			if _, err := fmt.Fprintf(w, "%d\t%d\t%d\n", b.Lo, b.Hi, b.Count); err != nil {
				return err
			}
		}
	}
	return nil
}
