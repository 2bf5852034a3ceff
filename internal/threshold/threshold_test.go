package threshold

import (
	"testing"

	"github.com/ironsheep/simdtag-go/internal/binimage"
)

func fillGray(width, height int, fn func(x, y int) uint8) *binimage.GrayImage {
	gray, _ := binimage.NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gray.Set(x, y, fn(x, y))
		}
	}
	return gray
}

func TestAdaptive_UniformImageProducesNoPolarity(t *testing.T) {
	// width 48, all pixels value 127: tile spread is 0, below MinDiff, so
	// no pixel should be classified into either polarity.
	gray := fillGray(48, 8, func(x, y int) uint8 { return 127 })
	white, black, err := Adaptive(gray, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if white.NonZero() {
		t.Error("expected no white pixels in a uniform image")
	}
	if black.NonZero() {
		t.Error("expected no black pixels in a uniform image")
	}
}

func TestAdaptive_HighContrastSquareSplitsPolarity(t *testing.T) {
	// 5x5 image, a bright square in a dark field.
	gray := fillGray(5, 5, func(x, y int) uint8 {
		if x >= 1 && x <= 3 && y >= 1 && y <= 3 {
			return 250
		}
		return 5
	})
	white, black, err := Adaptive(gray, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !white.TestBit(2, 2) {
		t.Error("expected center of bright square to be white")
	}
	if !black.TestBit(0, 0) {
		t.Error("expected dark corner to be black")
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if white.TestBit(x, y) && black.TestBit(x, y) {
				t.Errorf("pixel (%d,%d) set in both polarities", x, y)
			}
		}
	}
}

func TestAdaptive_Checkerboard65Wide(t *testing.T) {
	gray := fillGray(65, 4, func(x, y int) uint8 {
		if (x+y)%2 == 0 {
			return 250
		}
		return 5
	})
	white, black, err := Adaptive(gray, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !white.NonZero() || !black.NonZero() {
		t.Error("expected both polarities present in checkerboard pattern")
	}
}

func TestAdaptive_InvalidTileSize(t *testing.T) {
	gray := fillGray(4, 4, func(x, y int) uint8 { return 0 })
	_, _, err := Adaptive(gray, Options{TileSize: 0, MinDiff: 5})
	if err == nil {
		t.Error("expected error for zero tile size")
	}
}

func TestBlurTileStats_ClampsAtBorder(t *testing.T) {
	stats := []tileStat{
		{min: 10, max: 20}, {min: 30, max: 40},
		{min: 50, max: 60}, {min: 70, max: 80},
	}
	blurred := blurTileStats(stats, 2, 2)
	// top-left tile's 3x3 neighborhood clamps to the 2x2 grid, so its
	// min should be the overall min (10) and max the overall max (80).
	if blurred[0].min != 10 || blurred[0].max != 80 {
		t.Errorf("got %+v, want min=10 max=80", blurred[0])
	}
}
