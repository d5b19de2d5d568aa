package output

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for per-record text output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source\trow\tid\tstructure\thelices\tlengths\tpk_lengths\tinteraction_length\terror"
