// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"seqedit/core/fasta"
)

// Output format names.
const (
	FormatFASTA = "fasta"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Edited is everything a writer may need to render one edited record.
type Edited struct {
	Record       fasta.Record // the new record, header already annotated
	SourceFile   string
	SourceLength int
	Operation    string // command-line form of the applied operation
	Kind         string // operation variant
	Description  string
	LineWidth    int
}

// RecordWriter renders one edited record.
type RecordWriter func(w io.Writer, e Edited) error

// RecordWriters maps format → handler. Register in init() blocks.
var RecordWriters = map[string]RecordWriter{}

// RegisterRecord installs fn for format (idempotent last-wins).
func RegisterRecord(format string, fn RecordWriter) { RecordWriters[format] = fn }

// Formats lists registered format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(RecordWriters))
	for k := range RecordWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the writer for format or an error naming the known formats.
func Lookup(format string) (RecordWriter, error) {
	fn, ok := RecordWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (want %s)", format, strings.Join(Formats(), " | "))
	}
	return fn, nil
}
