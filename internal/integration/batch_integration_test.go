package integration

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seqedit/pkg/api"
)

func writeManifest(t *testing.T, dir string, n int, extra string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("line_width: 0\njobs:\n")
	for i := 0; i < n; i++ {
		in := write(t, filepath.Join(dir, fmt.Sprintf("in%02d.fa", i)), fmt.Sprintf(">r%d\nACGTACGTAC\n", i))
		fmt.Fprintf(&b, "  - id: job%02d\n    input: %s\n    ops: [\"delete %d %d\", \"insert 1 GG\"]\n",
			i, filepath.Base(in), 1+i%5, 5+i%5)
	}
	b.WriteString(extra)
	return write(t, filepath.Join(dir, "manifest.yaml"), b.String())
}

func decodeResults(t *testing.T, out string) []api.BatchResultV1 {
	t.Helper()
	var rs []api.BatchResultV1
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var r api.BatchResultV1
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("decode %q: %v", sc.Text(), err)
		}
		rs = append(rs, r)
	}
	return rs
}

func TestBatchParallelMatchesSerial(t *testing.T) {
	dir := t.TempDir()
	man := writeManifest(t, dir, 12, "")

	runB := func(threads int) string {
		code, out, errS := run(t, "batch", "--threads", fmt.Sprint(threads), man)
		if code != 0 {
			t.Fatalf("threads=%d: exit %d stderr %s", threads, code, errS)
		}
		return out
	}

	serial := runB(1)
	parallel := runB(4)
	if serial != parallel {
		t.Fatalf("parallel output differs from serial\nserial: %s\nparallel:%s", serial, parallel)
	}

	rs := decodeResults(t, serial)
	if len(rs) != 12 {
		t.Fatalf("want 12 results, got %d", len(rs))
	}
	for i, r := range rs {
		if r.ID != fmt.Sprintf("job%02d", i) || r.Status != api.StatusOK {
			t.Fatalf("result %d: %+v", i, r)
		}
		if r.LengthIn != 10 || r.LengthOut != 7 {
			t.Fatalf("result %d lengths: %+v", i, r)
		}
		data, err := os.ReadFile(r.Output)
		if err != nil {
			t.Fatalf("read output %s: %v", r.Output, err)
		}
		if !strings.HasPrefix(string(data), r.Header+"\nGG") {
			t.Fatalf("output %s: %q", r.Output, data)
		}
	}
}

func TestBatchFailingJobExit1(t *testing.T) {
	dir := t.TempDir()
	extra := "  - id: broken\n    input: in00.fa\n    op: delete 5 40\n"
	man := writeManifest(t, dir, 3, extra)

	code, out, errS := run(t, "batch", man)
	if code != 1 {
		t.Fatalf("exit %d want 1 (stderr=%s)", code, errS)
	}
	if !strings.Contains(errS, "job broken") {
		t.Fatalf("stderr should name the failed job: %s", errS)
	}
	rs := decodeResults(t, out)
	if len(rs) != 4 {
		t.Fatalf("want 4 results, got %d", len(rs))
	}
	for _, r := range rs[:3] {
		if r.Status != api.StatusOK {
			t.Fatalf("independent job failed: %+v", r)
		}
	}
	last := rs[3]
	if last.Status != api.StatusError || !strings.Contains(last.Error, "beyond sequence length") {
		t.Fatalf("broken job: %+v", last)
	}
	if _, err := os.Stat(last.Output); !os.IsNotExist(err) {
		t.Fatalf("failed job must not write %s", last.Output)
	}
}

func TestBatchInvalidManifestExit2(t *testing.T) {
	dir := t.TempDir()
	man := write(t, filepath.Join(dir, "m.yaml"), "jobs:\n  - input: a.fa\n    op: delete 1 2\n    colour: red\n")
	if code, _, errS := run(t, "batch", man); code != 2 {
		t.Fatalf("exit %d want 2 (stderr=%s)", code, errS)
	}
}
