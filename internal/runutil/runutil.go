// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads returns the worker count to use: threads when positive,
// otherwise one per CPU.
func EffectiveThreads(threads int) int {
	if threads > 0 {
		return threads
	}
	return runtime.NumCPU()
}

// CapThreads never starts more workers than there are jobs (minimum 1).
func CapThreads(threads, jobs int) int {
	if jobs < 1 {
		return 1
	}
	if threads > jobs {
		return jobs
	}
	if threads < 1 {
		return 1
	}
	return threads
}

// EffectiveLineWidth applies an optional per-run override to the configured width.
func EffectiveLineWidth(configured int, override *int) int {
	if override != nil {
		return *override
	}
	return configured
}
