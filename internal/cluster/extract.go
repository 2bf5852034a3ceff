package cluster

import "github.com/ironsheep/simdtag-go/internal/ccl"

// knuthMultiplier is Knuth's multiplicative hash constant.
const knuthMultiplier = 2654435761

// Buckets maps a label-pair hash to the gradient points found between
// that pair of labels, in row-major scan order.
type Buckets map[uint32][]GradientPoint

// Options configures cluster extraction.
type Options struct {
	// InitialBucketCapacity is the capacity reserved for a bucket's
	// point slice the first time it's seen.
	InitialBucketCapacity int
}

// DefaultOptions returns spec.md's named default.
func DefaultOptions() Options {
	return Options{InitialBucketCapacity: 2048}
}

// hashLabelPair min-max normalizes the label pair, concatenates to 64
// bits, multiplies by the Knuth constant, and takes the high 32 bits.
func hashLabelPair(a, b int32) uint32 {
	lo, hi := uint64(a), uint64(b)
	if lo > hi {
		lo, hi = hi, lo
	}
	key := lo<<32 | hi
	return uint32((key * knuthMultiplier) >> 32)
}

type direction struct {
	dx, dy int
}

// Scan order matches the original's 4-neighbor walk: E, S, SE, SW. SW is
// scanned last since it alone is subject to the de-duplication rule.
var directions = [4]direction{
	{dx: 1, dy: 0},  // E
	{dx: 0, dy: 1},  // S
	{dx: 1, dy: 1},  // SE
	{dx: -1, dy: 1}, // SW
}

// Extract walks every pixel of labeling's combined image and emits a
// gradient point for each 4-neighbor edge between differently-labeled,
// opposite-polarity pixels, bucketed by the unordered label-pair hash.
func Extract(labeling *ccl.DualLabeling, opts Options) Buckets {
	buckets := make(Buckets)
	img := labeling.Image
	width, height := img.Width, img.Height

	put := func(a, b int32, pt GradientPoint) {
		h := hashLabelPair(a, b)
		bucket, ok := buckets[h]
		if !ok {
			bucket = make([]GradientPoint, 0, opts.InitialBucketCapacity)
		}
		buckets[h] = append(bucket, pt)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			anchor := img.At(x, y)
			if anchor == 0 {
				continue
			}

			for _, d := range directions {
				nx, ny := x+d.dx, y+d.dy
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				neighbor := img.At(nx, ny)
				if neighbor == 0 {
					continue
				}
				if labeling.White[anchor] == labeling.White[neighbor] {
					continue
				}

				if d.dx == -1 && d.dy == 1 {
					if suppressSW(img, x, y, neighbor) {
						continue
					}
				}

				pt := NewGradientPoint(x, y, d.dx, d.dy, labeling.White[neighbor])
				put(anchor, neighbor, pt)
			}
		}
	}

	return buckets
}

// suppressSW implements the de-duplication rule for the SW direction:
// the SW edge from the current anchor duplicates one already recorded
// from a neighboring anchor's viewpoint when the anchor's west neighbor
// and south neighbor line up with the SW neighbor in either of two ways.
func suppressSW(img *ccl.LabelImage, x, y int, swLabel int32) bool {
	idAnchor := img.At(x, y)
	idWest := img.At(x-1, y)
	idSouth := img.At(x, y+1)
	idSW := swLabel

	if idWest == idAnchor && idSouth == idSW {
		return true
	}
	if idWest == idSW && idAnchor == idSouth {
		return true
	}
	return false
}
