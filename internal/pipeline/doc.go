// Package pipeline wires adaptive thresholding, dual BMRS connected
// component labeling, gradient-cluster extraction, and fit-quads
// pruning/sorting into one call per frame, and provides a bounded
// worker pool for running that call across a stream of frames.
//
// # Stage order
//
// threshold.Adaptive -> ccl.LabelDual -> cluster.Extract -> quadfit.Fit,
// the same order the benchmark harness in the original implementation
// wires them in.
//
// # Concurrency
//
// A Pipeline value holds no mutable state and is safe to reuse or to
// run concurrently from multiple goroutines, each with its own
// Pipeline. Runner adds a bounded worker pool on top, for callers that
// want to process a stream of frames without spinning up one goroutine
// per frame.
package pipeline
