// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"

	"seqedit/pkg/api"
)

// StartJSONL spins up an encoder goroutine that writes each value of in as one
// JSON line. The returned error channel yields exactly one value once in is
// closed and the output flushed; broken pipes are reported as nil.
func StartJSONL[T any](out io.Writer, bufSize int) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		enc := json.NewEncoder(bw)
		var err error
		for v := range in {
			if err != nil {
				continue // drain so senders never block
			}
			err = enc.Encode(v)
		}
		if err == nil {
			err = bw.Flush()
		}
		done <- IgnoreBrokenPipe(err)
	}()

	return in, done
}

// StartBatchJSONLWriter streams batch job outcomes as JSONL (v1).
func StartBatchJSONLWriter(out io.Writer, bufSize int) (chan<- api.BatchResultV1, <-chan error) {
	return StartJSONL[api.BatchResultV1](out, bufSize)
}
