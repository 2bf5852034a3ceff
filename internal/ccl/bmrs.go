package ccl

import (
	"github.com/ironsheep/simdtag-go/internal/binimage"
	"github.com/ironsheep/simdtag-go/internal/unionfind"
)

// LabelSingle labels one packed binary image, the single-polarity path
// the original BMRS implementation also exposes alongside its dual mode.
func LabelSingle(img *binimage.PackedBinaryImage, opts Options) (*Labeling, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, binimage.ErrInvalidDimensions
	}
	return labelPolarity(img, opts), nil
}

// LabelDual labels the white and black polarity images, collapsing both
// into one label image whose two polarity label-id ranges are disjoint:
// both scans draw from the same union-find, white labels allocated
// first, so white and black components can never share a final label.
func LabelDual(white, black *binimage.PackedBinaryImage, opts Options) (*DualLabeling, error) {
	if white.Width <= 0 || white.Height <= 0 {
		return nil, binimage.ErrInvalidDimensions
	}
	if white.Width != black.Width || white.Height != black.Height {
		return nil, binimage.ErrInputStrideMismatch
	}

	uf := unionfind.New(opts.InitialBucketCapacity)
	whiteRuns := scanPolarity(white, uf)
	blackRuns := scanPolarity(black, uf)

	mapping, numLabels := uf.Flatten()
	image, counts, layerOf := writeback(white.Width, white.Height, [][][]Run{whiteRuns, blackRuns}, mapping, numLabels, opts.MinComponentPixels)

	whiteFlags := make([]bool, numLabels+1)
	for l := 1; l <= numLabels; l++ {
		whiteFlags[l] = layerOf[l] == 0
	}

	return &DualLabeling{Image: image, Counts: counts, White: whiteFlags}, nil
}
