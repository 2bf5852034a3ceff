// Package quadfit prunes implausibly-sized gradient clusters and orders
// the survivors into an angularly-sorted point sequence ready for a line
// or quad fitter.
//
// # Pruning
//
// A bucket smaller than MinClusterPixels cannot describe a quad's four
// edges reliably; a bucket larger than MaxClusterMultiplier times the
// image's own perimeter is noise, not a tag boundary.
//
// # Center and sort key
//
// The center is the bounding-box midpoint of the surviving points' raw
// encoded coordinates, nudged by a small fixed irrational offset so no
// point ever lands exactly on the center (which would make the sort
// surrogate's denominator zero). Each point is then classified into one
// of four quadrants around that center and given a sort key: the
// quadrant in the top two bits, a monotone-in-angle rational surrogate
// in the bottom bits. Sorting by that key orders the points around the
// boundary without any transcendental (atan2) arithmetic.
package quadfit
