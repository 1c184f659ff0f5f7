// Package compute provides the fork-join worker pool the physics core
// uses for its embarrassingly data-parallel per-particle passes (neighbor
// search, lambda computation, position-correction computation).
//
// [For] splits a [0, n) range into contiguous chunks, one per worker, and
// runs them concurrently; callers write only to indices within their own
// chunk, so no synchronization is needed inside the worker function.
package compute
