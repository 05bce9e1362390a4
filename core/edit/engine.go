// core/edit/engine.go
package edit

import (
	"fmt"
	"strings"

	"seqedit/core/dna"
)

// Result is the outcome of one edit.
type Result struct {
	Seq         string
	Description string // provenance text without brackets
}

// Edit applies op to seq and returns the new sequence with its provenance
// description. seq is left untouched; on error there is no partial result.
func Edit(seq string, op Operation) (Result, error) {
	if op == nil {
		return Result{}, fmt.Errorf("nil operation: %w", ErrUnknownOperation)
	}
	out, desc, err := op.apply(seq)
	if err != nil {
		return Result{}, err
	}
	return Result{Seq: out, Description: desc}, nil
}

// Apply edits sequence and appends a bracketed description of the edit to header.
func Apply(header, sequence string, op Operation) (string, string, error) {
	res, err := Edit(sequence, op)
	if err != nil {
		return "", "", err
	}
	return Annotate(header, res.Description), res.Seq, nil
}

// Annotate appends " [desc]" to header.
func Annotate(header, desc string) string {
	return header + " [" + desc + "]"
}

// ---------------- bounds ----------------

// checkPos verifies 1 <= v <= limit.
func checkPos(field string, v, limit, seqLen int) error {
	if v < 1 || v > limit {
		return &RangeError{Field: field, Value: v, Length: seqLen}
	}
	return nil
}

// checkRange verifies a 1-based inclusive range fits a sequence of length n.
func checkRange(start, end, n int) error {
	if start < 1 {
		return &RangeError{Field: "start position", Value: start, Length: n}
	}
	if start > end {
		return fmt.Errorf("start position %d > end position %d: %w", start, end, ErrCoordinateOrder)
	}
	return checkPos("end position", end, n, n)
}

func splice(n int, parts ...string) string {
	var b strings.Builder
	b.Grow(n)
	for _, p := range parts {
		b.WriteString(p)
	}
	return b.String()
}

// ---------------- variants ----------------

func (o Delete) apply(seq string) (string, string, error) {
	n := len(seq)
	if err := checkRange(o.Start, o.End, n); err != nil {
		return "", "", err
	}
	length := o.End - o.Start + 1
	out := splice(n-length, seq[:o.Start-1], seq[o.End:])
	return out, fmt.Sprintf("deleted %dbp at positions %d-%d", length, o.Start, o.End), nil
}

func (o Insert) apply(seq string) (string, string, error) {
	n := len(seq)
	if err := checkPos("insert position", o.Position, n+1, n); err != nil {
		return "", "", err
	}
	bases, err := dna.ValidateBases(o.Bases)
	if err != nil {
		return "", "", err
	}
	idx := o.Position - 1
	out := splice(n+len(bases), seq[:idx], bases, seq[idx:])
	return out, fmt.Sprintf("inserted %dbp '%s' at position %d", len(bases), bases, o.Position), nil
}

func (o Invert) apply(seq string) (string, string, error) {
	n := len(seq)
	if err := checkRange(o.Start, o.End, n); err != nil {
		return "", "", err
	}
	region := []byte(seq[o.Start-1 : o.End])
	label := "inverted"
	if o.Complement {
		region = dna.ReverseComplement(region)
		label = "reverse complemented"
	} else {
		region = dna.Reverse(region)
	}
	out := splice(n, seq[:o.Start-1], string(region), seq[o.End:])
	return out, fmt.Sprintf("%s %dbp at positions %d-%d", label, len(region), o.Start, o.End), nil
}

func (o Duplicate) apply(seq string) (string, string, error) {
	n := len(seq)
	if err := checkRange(o.Start, o.End, n); err != nil {
		return "", "", err
	}
	if err := checkPos("insert position", o.Position, n+1, n); err != nil {
		return "", "", err
	}
	segment := seq[o.Start-1 : o.End]
	idx := o.Position - 1
	out := splice(n+len(segment), seq[:idx], segment, seq[idx:])
	return out, fmt.Sprintf("duplicated %dbp from positions %d-%d to position %d",
		len(segment), o.Start, o.End, o.Position), nil
}

func (o TandemDuplicate) apply(seq string) (string, string, error) {
	n := len(seq)
	if err := checkRange(o.Start, o.End, n); err != nil {
		return "", "", err
	}
	segment := seq[o.Start-1 : o.End]
	out := splice(n+len(segment), seq[:o.Start-1], segment, segment, seq[o.End:])
	return out, fmt.Sprintf("tandem duplicated %dbp at positions %d-%d", len(segment), o.Start, o.End), nil
}

func (o Copyback) apply(seq string) (string, string, error) {
	n := len(seq)
	if o.End != FivePrime && o.End != ThreePrime {
		return "", "", fmt.Errorf("%v: %w", o.End, ErrInvalidGenomeEnd)
	}
	if err := checkPos("breakpoint", o.Breakpoint, n, n); err != nil {
		return "", "", err
	}
	if err := checkPos("backstart", o.Backstart, n, n); err != nil {
		return "", "", err
	}
	if o.Backstart > o.Breakpoint {
		return "", "", fmt.Errorf("backstart %d > breakpoint %d: %w", o.Backstart, o.Breakpoint, ErrCoordinateOrder)
	}

	template := []byte(seq)
	if o.End == ThreePrime {
		// 3' products are built on the reverse-complemented reference.
		template = dna.ReverseComplement(template)
	}
	out := make([]byte, 0, o.Breakpoint+o.Backstart)
	out = append(out, template[:o.Breakpoint]...)
	out = append(out, dna.ReverseComplement(template[:o.Backstart])...)
	return string(out), o.describe(), nil
}

func (o Copyback) describe() string {
	ref := ""
	if o.End == ThreePrime {
		ref = " of reference revcomp"
	}
	if o.Snapback() {
		return fmt.Sprintf("%v copyback (snapback) at position %d%s", o.End, o.Breakpoint, ref)
	}
	return fmt.Sprintf("%v copyback up to position %d%s then reverse complement of position %d on",
		o.End, o.Breakpoint, ref, o.Backstart)
}
