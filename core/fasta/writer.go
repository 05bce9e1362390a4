// core/fasta/writer.go
package fasta

import (
	"bufio"
	"io"
)

// DefaultLineWidth is the conventional FASTA sequence line length.
const DefaultLineWidth = 70

// Write emits the header verbatim on its own line followed by the sequence
// wrapped at width bases per line. width <= 0 writes the sequence on one line.
func Write(w io.Writer, rec Record, width int) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(rec.Header); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	seq := rec.Seq
	if width <= 0 {
		width = len(seq)
	}
	for off := 0; off < len(seq); off += width {
		end := off + width
		if end > len(seq) {
			end = len(seq)
		}
		if _, err := bw.WriteString(seq[off:end]); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
