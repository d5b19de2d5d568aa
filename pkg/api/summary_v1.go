// pkg/api/summary_v1.go
package api

// SummaryV1 is the stable schema for --summary JSON output.
type SummaryV1 struct {
	Records           int     `json:"records"`
	Failed            int     `json:"failed"`
	Helices           int     `json:"helices"`
	PseudoknotHelices int     `json:"pk_helices"`
	HelicesPerRecord  []BinV1 `json:"helices_per_record"`
	HelixLengths      []BinV1 `json:"helix_lengths"`
	PseudoknotLengths []BinV1 `json:"pk_lengths"`
	InteractionLength []BinV1 `json:"interaction_lengths"`
}

// BinV1 counts values in [lo, hi).
type BinV1 struct {
	Lo    int `json:"lo"`
	Hi    int `json:"hi"`
	Count int `json:"count"`
}
