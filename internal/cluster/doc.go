// Package cluster extracts boundary gradient points from a labeled
// image and buckets them by the unordered pair of labels each point
// sits between.
//
// # Gradient Point Encoding
//
// Each point is packed into a 32-bit value: bits 31:20 hold 2x+dx, bits
// 19:8 hold 2y+dy, bits 7:4 hold a nibble encoding (dx+1, dy+1) as two
// 2-bit fields, and bit 0 is a polarity flag (set when the neighbor
// pixel is brighter than the anchor). Putting the sub-pixel coordinate
// in the high bits means sorting points by their raw uint32 value
// orders them by x then y.
//
// # Bucketing
//
// A cluster is every gradient point found between one pair of labels,
// keyed by a Knuth multiplicative hash of the unordered label pair.
// Buckets are pre-sized so the common case of one quad boundary per
// bucket doesn't reallocate while scanning.
package cluster
