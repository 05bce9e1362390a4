// internal/writers/record.go
package writers

import (
	"encoding/json"
	"io"

	"seqedit/core/fasta"
	"seqedit/pkg/api"
)

func init() {
	RegisterRecord(FormatFASTA, writeFASTA)
	RegisterRecord(FormatJSON, func(w io.Writer, e Edited) error { return EncodePretty(w, ToAPIEdit(e)) })
	RegisterRecord(FormatJSONL, func(w io.Writer, e Edited) error { return json.NewEncoder(w).Encode(ToAPIEdit(e)) })
}

func writeFASTA(w io.Writer, e Edited) error {
	return fasta.Write(w, e.Record, e.LineWidth)
}

// ToAPIEdit converts an edited record to the stable wire schema (v1).
func ToAPIEdit(e Edited) api.EditV1 {
	return api.EditV1{
		Header:       e.Record.Header,
		Sequence:     e.Record.Seq,
		Length:       len(e.Record.Seq),
		SourceLength: e.SourceLength,
		Operation:    e.Operation,
		Description:  e.Description,
		SourceFile:   e.SourceFile,
		Kind:         e.Kind,
	}
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
