package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"seqedit/core/fasta"
	"seqedit/pkg/api"
)

func sample() Edited {
	return Edited{
		Record:       fasta.Record{Header: ">s [deleted 3bp at positions 3-5]", Seq: "ACCGTAC"},
		SourceFile:   "in.fa",
		SourceLength: 10,
		Operation:    "delete 3 5",
		Kind:         "delete",
		Description:  "deleted 3bp at positions 3-5",
		LineWidth:    4,
	}
}

func render(t *testing.T, format string, w io.Writer) error {
	t.Helper()
	fn, err := Lookup(format)
	if err != nil {
		t.Fatalf("lookup %s: %v", format, err)
	}
	return fn(w, sample())
}

func TestRegistryFormats(t *testing.T) {
	got := strings.Join(Formats(), ",")
	if got != "fasta,json,jsonl" {
		t.Fatalf("formats = %s", got)
	}
	if _, err := Lookup("genbank"); err == nil || !strings.Contains(err.Error(), "fasta | json | jsonl") {
		t.Fatalf("unexpected lookup error: %v", err)
	}
}

func TestWriteFASTA(t *testing.T) {
	var buf bytes.Buffer
	if err := render(t, FormatFASTA, &buf); err != nil {
		t.Fatalf("fasta: %v", err)
	}
	want := ">s [deleted 3bp at positions 3-5]\nACCG\nTAC\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := render(t, FormatJSON, &buf); err != nil {
		t.Fatalf("json: %v", err)
	}
	var got api.EditV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if got.Length != 7 || got.SourceLength != 10 || got.Operation != "delete 3 5" || got.Kind != "delete" || got.Sequence != "ACCGTAC" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if !strings.Contains(buf.String(), "\n  \"header\"") {
		t.Fatalf("json output should be indented:\n%s", buf.String())
	}
}

func TestWriteJSONLSingleLine(t *testing.T) {
	var buf bytes.Buffer
	if err := render(t, FormatJSONL, &buf); err != nil {
		t.Fatalf("jsonl: %v", err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 1 {
		t.Fatalf("expected one line, got %d: %q", n, buf.String())
	}
}

func TestBatchJSONLWriter(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartBatchJSONLWriter(&buf, 2)
	for i := 0; i < 3; i++ {
		in <- api.BatchResultV1{ID: fmt.Sprint(i), Status: api.StatusOK}
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	var first api.BatchResultV1
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil || first.ID != "0" {
		t.Fatalf("first line = %q (%v)", lines[0], err)
	}
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestBatchJSONLWriterErrors(t *testing.T) {
	in, done := StartJSONL[int](failingWriter{err: syscall.EPIPE}, 1)
	in <- 1
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("broken pipe should be swallowed, got %v", err)
	}

	boom := errors.New("disk full")
	in2, done2 := StartJSONL[int](failingWriter{err: boom}, 1)
	in2 <- 1
	close(in2)
	if err := <-done2; !errors.Is(err, boom) {
		t.Fatalf("expected disk full, got %v", err)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("expected broken pipe detection")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(io.EOF) {
		t.Fatal("unexpected broken pipe detection")
	}
}
