// internal/batch/runner.go
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"seqedit/core/edit"
	"seqedit/core/fasta"
	"seqedit/pkg/api"
)

// ErrJobsFailed is returned by Run when at least one job did not succeed.
var ErrJobsFailed = errors.New("one or more batch jobs failed")

// Config controls the worker pool.
type Config struct {
	Threads   int // number of worker goroutines (>=1)
	LineWidth int // FASTA line width for outputs
}

// Result is the outcome of one job.
type Result struct {
	Job       Job
	Header    string // final header, empty on failure
	LengthIn  int
	LengthOut int
	Err       error
}

// OK reports whether the job succeeded.
func (r Result) OK() bool { return r.Err == nil }

// API converts r to the stable wire schema (v1).
func (r Result) API() api.BatchResultV1 {
	v := api.BatchResultV1{
		ID:        r.Job.ID,
		Input:     r.Job.Input,
		Output:    r.Job.Output,
		Ops:       r.Job.OpStrings(),
		Kinds:     r.Job.Kinds(),
		Status:    api.StatusOK,
		LengthIn:  r.LengthIn,
		LengthOut: r.LengthOut,
		Header:    r.Header,
	}
	if r.Err != nil {
		v.Status = api.StatusError
		v.Error = r.Err.Error()
	}
	return v
}

// RunJob reads the job input, applies its operations in order and writes the
// output file. Nothing is written when any step fails.
func RunJob(ctx context.Context, j Job, lineWidth int) Result {
	res := Result{Job: j}
	rec, err := fasta.ReadPath(ctx, j.Input)
	if err != nil {
		res.Err = err
		return res
	}
	res.LengthIn = len(rec.Seq)

	header, seq := rec.Header, rec.Seq
	for i, op := range j.Ops {
		header, seq, err = edit.Apply(header, seq, op)
		if err != nil {
			res.Err = fmt.Errorf("op %d (%s): %w", i+1, op, err)
			return res
		}
	}
	if err := fasta.WritePath(j.Output, fasta.Record{Header: header, Seq: seq}, lineWidth); err != nil {
		res.Err = err
		return res
	}
	res.Header, res.LengthOut = header, len(seq)
	return res
}

// ForEachResult runs jobs on cfg.Threads workers and calls visit for every
// result in manifest order. It returns the first visit error or ctx.Err().
func ForEachResult(ctx context.Context, cfg Config, jobs []Job, visit func(Result) error) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	jobCh := make(chan Job, cfg.Threads*2)
	results := make(chan Result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobCh:
					if !ok {
						return
					}
					r := RunJob(ctx, j, cfg.LineWidth)
					select {
					case results <- r:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: re-sequence by manifest position.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		order := make(map[int]int, len(jobs)) // Job.Index → slot
		for slot, j := range jobs {
			order[j.Index] = slot
		}
		pending := make(map[int]Result)
		next := 0
		for r := range results {
			pending[order[r.Job.Index]] = r
			for {
				pr, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if cerr != nil {
					continue
				}
				if err := visit(pr); err != nil {
					cerr = err
				}
			}
		}
	}()

	// Feed work
feed:
	for _, j := range jobs {
		select {
		case <-ctx.Done():
			break feed
		case jobCh <- j:
		}
	}

	close(jobCh)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}

// Summary counts outcomes.
type Summary struct {
	OK, Failed int
}

// Run is ForEachResult plus a tally. It returns ErrJobsFailed when any job
// failed and every job was visited.
func Run(ctx context.Context, cfg Config, jobs []Job, visit func(Result) error) (Summary, error) {
	var s Summary
	err := ForEachResult(ctx, cfg, jobs, func(r Result) error {
		if r.OK() {
			s.OK++
		} else {
			s.Failed++
		}
		return visit(r)
	})
	if err != nil {
		return s, err
	}
	if s.Failed > 0 {
		return s, fmt.Errorf("%w (%d of %d)", ErrJobsFailed, s.Failed, len(jobs))
	}
	return s, nil
}
