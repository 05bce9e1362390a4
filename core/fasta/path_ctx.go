// core/fasta/path_ctx.go
package fasta

import (
	"context"
	"fmt"
)

// ReadPath opens path ("-" = stdin, gzip auto-detected) and reads its single record.
// Cancellation via ctx is honored between lines.
func ReadPath(ctx context.Context, path string) (Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return Record{}, err
	}
	defer rc.Close()

	rec, err := ReadCtx(ctx, rc)
	if err != nil {
		if path == "-" {
			return Record{}, fmt.Errorf("stdin: %w", err)
		}
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// WritePath writes rec to path, wrapped at width. A ".gz" suffix gzips the output.
func WritePath(path string, rec Record, width int) (err error) {
	wc, err := Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return Write(wc, rec, width)
}
