/*
Package batch runs independent jobs on a bounded number of goroutines.

A batch never aborts because of a failing job. Every job is run, failures are
remembered, and Run returns after all jobs have finished. Results keep the
order of the jobs.

	results := batch.Run(ctx, 8, jobs, func(ctx context.Context, j Job) (Record, error) {
	    …
	})
	records := batch.Values(results)

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package batch

import (
	"context"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/sync/errgroup"
)

// tracer traces with key 'emojiconv'
func tracer() tracing.Trace {
	return tracing.Select("emojiconv")
}

// Result is the outcome of a single job.
type Result[T any] struct {
	Value T
	Err   error
}

// OK is true if the job succeeded.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Run calls fn for every job, with at most limit calls in flight. A limit
// below 1 is treated as 1. Jobs which have not been started when ctx is
// cancelled fail with the context's error.
func Run[J, T any](ctx context.Context, limit int, jobs []J,
	fn func(context.Context, J) (T, error)) []Result[T] {
	//
	if limit < 1 {
		limit = 1
	}
	results := make([]Result[T], len(jobs))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Value, results[i].Err = fn(ctx, job)
			return nil // a failing job does not stop the batch
		})
	}
	_ = g.Wait()
	tracer().Debugf("batch of %d jobs done, %d failed", len(jobs), len(Failures(results)))
	return results
}

// Values returns the values of all successful results, in job order.
func Values[T any](results []Result[T]) []T {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.OK() {
			values = append(values, r.Value)
		}
	}
	return values
}

// Failures returns the indices of all failed results.
func Failures[T any](results []Result[T]) []int {
	var failed []int
	for i, r := range results {
		if !r.OK() {
			failed = append(failed, i)
		}
	}
	return failed
}
