// Package unionfind implements the disjoint-set structure used by the
// connected-component labeling stage.
//
// Merge always attaches the larger root under the smaller one
// (merge-by-smaller-root), not union-by-rank or union-by-size; this is
// required so that, after Flatten, the surviving root of any component
// is always its smallest member label, which the labeling writeback
// step relies on. FindRoot performs no path compression; path
// compression happens once, in Flatten, after all merges for an image
// are done.
package unionfind
