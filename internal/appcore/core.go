// internal/appcore/core.go
package appcore

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"seqedit/core/edit"
	"seqedit/core/fasta"
	"seqedit/internal/batch"
	"seqedit/internal/cmdutil"
	"seqedit/internal/runutil"
	"seqedit/internal/writers"
)

// EditOptions drives a single-record edit.
type EditOptions struct {
	Input     string // path or "-" for stdin
	Output    string // path; "" or "-" for stdout
	Format    string
	LineWidth int
	Verbose   bool
}

// RunEdit reads one record, applies op and writes the result. The output is
// only created once the edit has succeeded.
func RunEdit(ctx context.Context, stdout, stderr io.Writer, o EditOptions, op edit.Operation) (err error) {
	wr, err := writers.Lookup(o.Format)
	if err != nil {
		return Usage(err)
	}
	rec, err := fasta.ReadPath(ctx, o.Input)
	if err != nil {
		return err
	}
	cmdutil.Infof(stderr, o.Verbose, "read %s: %d bp", o.Input, len(rec.Seq))

	res, err := edit.Edit(rec.Seq, op)
	if err != nil {
		return err
	}
	e := writers.Edited{
		Record:       fasta.Record{Header: edit.Annotate(rec.Header, res.Description), Seq: res.Seq},
		SourceFile:   o.Input,
		SourceLength: len(rec.Seq),
		Operation:    op.String(),
		Kind:         string(op.Kind()),
		Description:  res.Description,
		LineWidth:    o.LineWidth,
	}
	cmdutil.Infof(stderr, o.Verbose, "%s: %s: %d bp → %d bp", op.Kind(), res.Description, len(rec.Seq), len(res.Seq))

	if o.Output == "" || o.Output == "-" {
		return wr(stdout, e)
	}
	wc, err := fasta.Create(o.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return wr(wc, e)
}

// BatchOptions drives a manifest run.
type BatchOptions struct {
	Manifest  string
	Threads   int
	LineWidth int
	Quiet     bool
	Verbose   bool
}

// RunBatch executes every manifest job and streams one JSONL result per job
// to stdout in manifest order. Failed jobs are warned about on stderr and
// reported as batch.ErrJobsFailed once all jobs have run.
func RunBatch(ctx context.Context, stdout, stderr io.Writer, o BatchOptions) error {
	m, err := batch.LoadManifest(o.Manifest)
	if err != nil {
		return err
	}
	jobs, err := m.Resolve(filepath.Dir(o.Manifest))
	if err != nil {
		return err
	}

	cfg := batch.Config{
		Threads:   runutil.CapThreads(runutil.EffectiveThreads(o.Threads), len(jobs)),
		LineWidth: runutil.EffectiveLineWidth(o.LineWidth, m.LineWidth),
	}
	cmdutil.Infof(stderr, o.Verbose, "running %d jobs on %d workers", len(jobs), cfg.Threads)

	in, done := writers.StartBatchJSONLWriter(stdout, cfg.Threads*4)
	sum, runErr := batch.Run(ctx, cfg, jobs, func(r batch.Result) error {
		if !r.OK() {
			cmdutil.Warnf(stderr, o.Quiet, "job %s: %v", r.Job.ID, r.Err)
		}
		select {
		case in <- r.API():
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	close(in)
	if werr := <-done; werr != nil {
		return fmt.Errorf("write results: %w", werr)
	}
	cmdutil.Infof(stderr, o.Verbose, "%d ok, %d failed", sum.OK, sum.Failed)
	return runErr
}
