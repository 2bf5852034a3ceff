package ccl

import (
	"github.com/ironsheep/simdtag-go/internal/binimage"
	"github.com/ironsheep/simdtag-go/internal/unionfind"
)

// Options configures the labeling stage.
type Options struct {
	// InitialBucketCapacity seeds the union-find's label capacity so the
	// common case doesn't reallocate while scanning.
	InitialBucketCapacity int
	// MinComponentPixels is the minimum final population a component
	// must have to survive; smaller ones are zeroed to background.
	MinComponentPixels int
}

// DefaultOptions returns the defaults named in spec.md's external
// interface table, plus MinComponentPixels promoted from the original's
// hardcoded dual-labeling sweep threshold (see DESIGN.md).
func DefaultOptions() Options {
	return Options{InitialBucketCapacity: 2048, MinComponentPixels: 25}
}

// linkRuns merges the labels of any pair of runs from consecutive rows
// that are 8-connected, including diagonal touches: half-open ranges
// [prev.Start,prev.End) and [cur.Start,cur.End) are connected when
// cur.Start <= prev.End and prev.Start <= cur.End. Both slices must be
// sorted by Start, which scanRuns guarantees.
func linkRuns(prev, cur []Run, uf *unionfind.DisjointSet) {
	i, j := 0, 0
	for i < len(prev) && j < len(cur) {
		p := prev[i]
		c := cur[j]
		if p.End < c.Start {
			i++
			continue
		}
		if c.End < p.Start {
			j++
			continue
		}
		uf.Merge(p.Label, c.Label)
		if p.End < c.End {
			i++
		} else {
			j++
		}
	}
}

// scanPolarity discovers and links every row's runs over one packed
// image, allocating labels from uf. The caller flattens uf once all
// polarities of interest have been scanned, so labels allocated across
// multiple calls sharing one uf stay in disjoint ranges.
func scanPolarity(img *binimage.PackedBinaryImage, uf *unionfind.DisjointSet) [][]Run {
	allRuns := make([][]Run, img.Height)
	wordsNeeded := (img.Width+63)/64 + 1

	var prevRuns []Run
	for y := 0; y < img.Height; y++ {
		runs := scanRuns(img.Row(y), wordsNeeded, img.Width)
		for i := range runs {
			runs[i].Label = uf.NewLabel()
		}
		if prevRuns != nil {
			linkRuns(prevRuns, runs, uf)
		}
		allRuns[y] = runs
		prevRuns = runs
	}
	return allRuns
}

// writeback flattens labels (via the caller-supplied mapping) across one
// or more polarity layers into a single label image, drops components
// below minPixels, and reports which layer each surviving final label
// came from.
func writeback(width, height int, layers [][][]Run, mapping []int, numLabels, minPixels int) (*LabelImage, []int, []int) {
	counts := make([]int, numLabels+1)
	layerOf := make([]int, numLabels+1)
	for li, allRuns := range layers {
		for y := 0; y < height; y++ {
			for _, r := range allRuns[y] {
				f := mapping[r.Label]
				counts[f] += r.End - r.Start
				layerOf[f] = li
			}
		}
	}

	keep := make([]bool, numLabels+1)
	for l := 1; l <= numLabels; l++ {
		keep[l] = counts[l] >= minPixels
	}

	img := newLabelImage(width, height)
	for _, allRuns := range layers {
		for y := 0; y < height; y++ {
			for _, r := range allRuns[y] {
				f := int32(mapping[r.Label])
				if !keep[f] {
					continue
				}
				for x := r.Start; x < r.End; x++ {
					img.set(x, y, f)
				}
			}
		}
	}

	finalCounts := make([]int, numLabels+1)
	for l := 1; l <= numLabels; l++ {
		if keep[l] {
			finalCounts[l] = counts[l]
		}
	}

	return img, finalCounts, layerOf
}

// labelPolarity runs run-based CCL over one packed polarity image and
// returns the dense label image and per-label pixel counts.
func labelPolarity(img *binimage.PackedBinaryImage, opts Options) *Labeling {
	uf := unionfind.New(opts.InitialBucketCapacity)
	allRuns := scanPolarity(img, uf)
	mapping, numLabels := uf.Flatten()
	image, counts, _ := writeback(img.Width, img.Height, [][][]Run{allRuns}, mapping, numLabels, opts.MinComponentPixels)
	return &Labeling{Image: image, Counts: counts}
}
