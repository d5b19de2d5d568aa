// pkg/api/records_v1.go
package api

// RecordV1 is the stable JSON/JSONL schema for one analysed structure.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	Source            string    `json:"source"`
	Row               int       `json:"row"`
	ID                string    `json:"id,omitempty"`
	Structure         string    `json:"structure"`
	Helices           []HelixV1 `json:"helices"`
	Lengths           []int     `json:"lengths"`
	PseudoknotLengths []int     `json:"pk_lengths"`
	InteractionLength int       `json:"interaction_length"`
	Error             string    `json:"error,omitempty"`
}

type HelixV1 struct {
	Start      int   `json:"start"`
	Length     int   `json:"length"`
	Positions  []int `json:"positions"`
	Pseudoknot bool  `json:"pseudoknot,omitempty"`
}
