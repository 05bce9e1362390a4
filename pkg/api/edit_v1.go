// pkg/api/edit_v1.go
package api

// EditV1 is the stable JSON schema for one edited record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type EditV1 struct {
	Header       string `json:"header"`
	Sequence     string `json:"sequence"`
	Length       int    `json:"length"`
	SourceLength int    `json:"source_length"`
	Operation    string `json:"operation"`   // command-line form, e.g. "delete 3 5"
	Description  string `json:"description"` // provenance text appended to the header
	SourceFile   string `json:"source_file,omitempty"`
	Kind         string `json:"kind,omitempty"` // operation variant, e.g. "tandem-duplicate"
}

// BatchResultV1 is the stable JSONL schema for one batch job outcome.
type BatchResultV1 struct {
	ID        string   `json:"id"`
	Input     string   `json:"input"`
	Output    string   `json:"output"`
	Ops       []string `json:"ops"`
	Kinds     []string `json:"kinds,omitempty"` // variant of each op, same order as Ops
	Status    string   `json:"status"` // "ok" | "error"
	Error     string   `json:"error,omitempty"`
	LengthIn  int      `json:"length_in,omitempty"`
	LengthOut int      `json:"length_out,omitempty"`
	Header    string   `json:"header,omitempty"`
}

// Batch job statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)
