package visualize

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/clone"

	"github.com/ironsheep/simdtag-go/internal/binimage"
	"github.com/ironsheep/simdtag-go/internal/ccl"
	"github.com/ironsheep/simdtag-go/internal/cluster"
)

// LabelOverlay renders labeling's label image as a flat color layer
// (background stays transparent-equivalent black) and normal-blends it
// over gray, producing an image suitable for PNG export.
func LabelOverlay(gray *binimage.GrayImage, labeling *ccl.DualLabeling) *image.NRGBA {
	base := clone.AsRGBA(grayToGray(gray))
	layer := image.NewRGBA(base.Bounds())
	palette := NewLabelPalette()

	img := labeling.Image
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			label := img.At(x, y)
			if label == 0 {
				continue
			}
			layer.Set(x, y, palette.Color(label))
		}
	}

	return blend.Normal(base, layer)
}

// ThresholdOverlay renders the white/black polarity masks as red and
// blue layers over the source grayscale image.
func ThresholdOverlay(gray *binimage.GrayImage, white, black *binimage.PackedBinaryImage) *image.NRGBA {
	base := clone.AsRGBA(grayToGray(gray))
	layer := image.NewRGBA(base.Bounds())

	for y := 0; y < gray.Height; y++ {
		for x := 0; x < gray.Width; x++ {
			switch {
			case white.TestBit(x, y):
				layer.Set(x, y, color.RGBA{R: 255, A: 255})
			case black.TestBit(x, y):
				layer.Set(x, y, color.RGBA{B: 255, A: 255})
			}
		}
	}

	return blend.Normal(base, layer)
}

// ClusterOverlay renders gradient-cluster buckets as per-bucket colored
// dots at each boundary point's decoded pixel location, normal-blended
// over the source grayscale image. Buckets reuse LabelPalette's
// golden-angle walk so adjacent bucket keys don't collide in hue, the
// same way LabelOverlay colors adjacent label ids.
func ClusterOverlay(gray *binimage.GrayImage, buckets cluster.Buckets) *image.NRGBA {
	base := clone.AsRGBA(grayToGray(gray))
	layer := image.NewRGBA(base.Bounds())
	palette := NewLabelPalette()

	for key, points := range buckets {
		c := palette.Color(int32(key))
		for _, p := range points {
			x, y := p.X(), p.Y()
			if x < 0 || x >= gray.Width || y < 0 || y >= gray.Height {
				continue
			}
			layer.Set(x, y, c)
		}
	}

	return blend.Normal(base, layer)
}

// grayToGray copies a binimage.GrayImage into the stdlib's image.Gray
// type, the input bild's clone/blend helpers expect.
func grayToGray(gray *binimage.GrayImage) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, gray.Width, gray.Height))
	for y := 0; y < gray.Height; y++ {
		for x := 0; x < gray.Width; x++ {
			g.SetGray(x, y, color.Gray{Y: gray.At(x, y)})
		}
	}
	return g
}
