// internal/output/convert.go
package output

import (
	"sort"

	"rnahelix-core/dotbracket"
	"rnahelix/internal/stats"
	"rnahelix/internal/table"
	"rnahelix/pkg/api"
)

// ToAPIRecord converts one analysed record to the stable wire schema (v1).
// A non-nil err replaces the analysis with its message.
func ToAPIRecord(rec table.Record, a dotbracket.Analysis, err error) api.RecordV1 {
	v := api.RecordV1{
		Source:            rec.Source,
		Row:               rec.Row,
		ID:                rec.ID,
		Structure:         rec.Structure,
		Helices:           []api.HelixV1{},
		Lengths:           []int{},
		PseudoknotLengths: []int{},
	}
	if err != nil {
		v.Error = err.Error()
		return v
	}
	for _, h := range a.Helices {
		v.Helices = append(v.Helices, api.HelixV1{
			Start:      h.Start,
			Length:     h.Length,
			Positions:  append([]int(nil), h.Positions...),
			Pseudoknot: h.Pseudoknot,
		})
	}
	v.Lengths = append(v.Lengths, a.Lengths...)
	v.PseudoknotLengths = append(v.PseudoknotLengths, a.PseudoknotLengths...)
	v.InteractionLength = a.InteractionLength
	return v
}

func ToAPISummary(s stats.Summary) api.SummaryV1 {
	return api.SummaryV1{
		Records:           s.Records,
		Failed:            s.Failed,
		Helices:           s.Helices,
		PseudoknotHelices: s.PseudoknotHelix,
		HelicesPerRecord:  toAPIBins(s.HelicesPerRecord),
		HelixLengths:      toAPIBins(s.HelixLengths),
		PseudoknotLengths: toAPIBins(s.PseudoknotLength),
		InteractionLength: toAPIBins(s.InteractionLen),
	}
}

func toAPIBins(bs []stats.Bin) []api.BinV1 {
	out := make([]api.BinV1, 0, len(bs))
	for _, b := range bs {
		out = append(out, api.BinV1{Lo: b.Lo, Hi: b.Hi, Count: b.Count})
	}
	return out
}

// SortRecords orders records by source, then row (for --sort).
func SortRecords(list []api.RecordV1) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Source != list[j].Source {
			return list[i].Source < list[j].Source
		}
		return list[i].Row < list[j].Row
	})
}
