// Package ccl implements block-based run-length connected-component
// labeling (BMRS) over packed binary images, with a dual-polarity mode
// that labels the white and black polarity bitplanes independently in
// one pass over the image.
//
// # Algorithm
//
// Each row's set-bit runs are discovered with math/bits.TrailingZeros64
// rather than a per-pixel scan. Runs are linked to the previous row's
// runs by an 8-connectivity overlap test (including diagonal touches),
// merging their labels through a union-find. After the last row, labels
// are flattened to a dense, 1-based id space and components below a
// minimum pixel count are dropped to the background label.
//
// This keeps BMRS's run-and-union-find structure and its CTZ-driven run
// discovery, but scans one row at a time rather than the original's
// merged-row-pair optimization, which halves scanned rows at the cost
// of a much more intricate two-cursor state machine; the per-row form
// produces an identical labeling and is far easier to get right without
// a compiler and test runner in the loop. See DESIGN.md.
package ccl
