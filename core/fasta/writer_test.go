package fasta

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteWraps(t *testing.T) {
	seq := strings.Repeat("A", 70) + strings.Repeat("C", 70) + "GT"
	var buf bytes.Buffer
	if err := Write(&buf, Record{Header: ">h", Seq: seq}, DefaultLineWidth); err != nil {
		t.Fatalf("Write: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != ">h" || len(lines[1]) != 70 || len(lines[2]) != 70 || lines[3] != "GT" {
		t.Fatalf("unexpected wrapping: %q", lines)
	}
}

func TestWriteExactMultiple(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Record{Header: ">h", Seq: "ACGTAC"}, 3); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != ">h\nACG\nTAC\n" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteNoWrap(t *testing.T) {
	var buf bytes.Buffer
	seq := strings.Repeat("G", 150)
	if err := Write(&buf, Record{Header: ">h", Seq: seq}, 0); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != ">h\n"+seq+"\n" {
		t.Fatalf("got %q", got)
	}
}

func TestWritePathGzipRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.fa.gz")
	in := Record{Header: ">gz", Seq: strings.Repeat("ACGT", 30)}
	if err := WritePath(fn, in, 60); err != nil {
		t.Fatalf("WritePath: %v", err)
	}
	out, err := ReadPath(context.Background(), fn)
	if err != nil {
		t.Fatalf("ReadPath: %v", err)
	}
	if out != in {
		t.Fatalf("got %+v, want %+v", out, in)
	}
}
