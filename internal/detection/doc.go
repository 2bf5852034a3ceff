// Package detection cross-checks the dual BMRS labeler against an
// independent flood-fill oracle.
//
// BMRS (internal/ccl) derives connected components from per-row runs
// merged bottom-up through a union-find, which is fast but easy to get
// subtly wrong at run-boundary and multi-row merge cases. VerifyLabeling
// re-derives the same components with a textbook 8-connected flood fill
// over the packed bitmap and compares the resulting partition against
// the labeler's output, without trusting any of the labeler's own
// bookkeeping.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
package detection
