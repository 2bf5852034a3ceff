package threshold

import (
	"fmt"

	"github.com/ironsheep/simdtag-go/internal/binimage"
)

// Options configures the adaptive threshold stage.
type Options struct {
	// TileSize is the edge length of the square tiles the image is
	// divided into for local min/max estimation.
	TileSize int
	// MinDiff is the minimum blurred max-min spread a tile must have
	// before any of its pixels are classified as white or black; below
	// this, pixels are treated as ambiguous (neither polarity).
	MinDiff int
}

// DefaultOptions returns the options spec.md's external-interface table
// names as defaults.
func DefaultOptions() Options {
	return Options{TileSize: 4, MinDiff: 5}
}

type tileStat struct {
	min, max uint8
}

// Adaptive runs tile-wise adaptive thresholding on gray, returning a
// packed binary image for the white polarity (pixel > tile midpoint)
// and one for the black polarity (pixel <= tile midpoint); pixels whose
// tile has too little contrast are set in neither.
func Adaptive(gray *binimage.GrayImage, opts Options) (white, black *binimage.PackedBinaryImage, err error) {
	if gray.Width <= 0 || gray.Height <= 0 {
		return nil, nil, binimage.ErrInvalidDimensions
	}
	if opts.TileSize <= 0 {
		return nil, nil, fmt.Errorf("threshold: tile size must be positive, got %d", opts.TileSize)
	}

	tilesWide := (gray.Width + opts.TileSize - 1) / opts.TileSize
	tilesHigh := (gray.Height + opts.TileSize - 1) / opts.TileSize

	raw := computeTileStats(gray, opts.TileSize, tilesWide, tilesHigh)
	blurred := blurTileStats(raw, tilesWide, tilesHigh)

	whiteImg, err := binimage.NewPackedBinaryImage(gray.Width, gray.Height)
	if err != nil {
		return nil, nil, err
	}
	blackImg, err := binimage.NewPackedBinaryImage(gray.Width, gray.Height)
	if err != nil {
		return nil, nil, err
	}

	for y := 0; y < gray.Height; y++ {
		ty := y / opts.TileSize
		row := gray.Row(y)
		for x := 0; x < gray.Width; x++ {
			tx := x / opts.TileSize
			st := blurred[ty*tilesWide+tx]
			if int(st.max)-int(st.min) < opts.MinDiff {
				continue
			}
			mid := int(st.min) + (int(st.max)-int(st.min))/2
			if int(row[x]) > mid {
				whiteImg.SetBit(x, y)
			} else {
				blackImg.SetBit(x, y)
			}
		}
	}

	return whiteImg, blackImg, nil
}

func computeTileStats(gray *binimage.GrayImage, tileSize, tilesWide, tilesHigh int) []tileStat {
	stats := make([]tileStat, tilesWide*tilesHigh)
	for ty := 0; ty < tilesHigh; ty++ {
		y0 := ty * tileSize
		y1 := min(y0+tileSize, gray.Height)
		for tx := 0; tx < tilesWide; tx++ {
			x0 := tx * tileSize
			x1 := min(x0+tileSize, gray.Width)
			lo, hi := uint8(255), uint8(0)
			for y := y0; y < y1; y++ {
				row := gray.Row(y)
				for x := x0; x < x1; x++ {
					v := row[x]
					if v < lo {
						lo = v
					}
					if v > hi {
						hi = v
					}
				}
			}
			stats[ty*tilesWide+tx] = tileStat{min: lo, max: hi}
		}
	}
	return stats
}

// blurTileStats takes the min of the 3x3 neighboring tile-mins and the
// max of the 3x3 neighboring tile-maxes, clamping neighbor tile
// coordinates to the valid range at the border (the Go equivalent of
// the original's repeat-edge boundary condition).
func blurTileStats(stats []tileStat, tilesWide, tilesHigh int) []tileStat {
	out := make([]tileStat, len(stats))
	for ty := 0; ty < tilesHigh; ty++ {
		for tx := 0; tx < tilesWide; tx++ {
			lo, hi := uint8(255), uint8(0)
			for dy := -1; dy <= 1; dy++ {
				ny := clampInt(ty+dy, 0, tilesHigh-1)
				for dx := -1; dx <= 1; dx++ {
					nx := clampInt(tx+dx, 0, tilesWide-1)
					st := stats[ny*tilesWide+nx]
					if st.min < lo {
						lo = st.min
					}
					if st.max > hi {
						hi = st.max
					}
				}
			}
			out[ty*tilesWide+tx] = tileStat{min: lo, max: hi}
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
