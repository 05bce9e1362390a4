// Package batch applies edit jobs listed in a YAML manifest across a pool of
// workers. Jobs are independent: a failing job is reported and the rest keep
// running. Results are delivered in manifest order so reports are
// reproducible regardless of the worker count.
package batch
