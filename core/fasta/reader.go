// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// Record is a single FASTA entry: the header line (with its leading '>')
// and the concatenated, uppercased sequence.
type Record struct {
	Header string
	Seq    string
}

var (
	// ErrEmptyInput is returned when there is nothing to read.
	ErrEmptyInput = errors.New("no input provided")

	// ErrNoHeader is returned when the first line does not start with '>'.
	ErrNoHeader = errors.New("input does not appear to be a valid FASTA file (no header starting with '>')")

	// ErrMultipleRecords is returned for multi-FASTA input.
	ErrMultipleRecords = errors.New("input contains multiple sequences; only single-sequence files are supported")

	// ErrEmptySequence is returned when the record has a header but no bases.
	ErrEmptySequence = errors.New("no sequence found in input")
)

// Read parses exactly one FASTA record from r.
func Read(r io.Reader) (Record, error) {
	return ReadCtx(context.Background(), r)
}

// ReadCtx is Read with cancellation checked between lines.
func ReadCtx(ctx context.Context, r io.Reader) (Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		rec    Record
		header bool
		seq    = make([]byte, 0, 1<<16)
	)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return Record{}, ctx.Err()
		default:
		}
		line := sc.Bytes()
		if !header {
			line = bytes.TrimRight(line, "\r")
			if len(line) == 0 || line[0] != '>' {
				return Record{}, ErrNoHeader
			}
			rec.Header = string(line)
			header = true
			continue
		}
		if len(line) > 0 && line[0] == '>' {
			return Record{}, ErrMultipleRecords
		}
		seq = append(seq, bytes.ToUpper(bytes.TrimSpace(line))...)
	}
	if err := sc.Err(); err != nil {
		return Record{}, fmt.Errorf("fasta scan: %w", err)
	}
	if !header {
		return Record{}, ErrEmptyInput
	}
	if len(seq) == 0 {
		return Record{}, ErrEmptySequence
	}
	rec.Seq = string(seq)
	return rec, nil
}
