package detection

import (
	"fmt"

	"github.com/ironsheep/simdtag-go/internal/binimage"
	"github.com/ironsheep/simdtag-go/internal/ccl"
)

// Mismatch describes one pixel where the BMRS labeling and the
// flood-fill oracle disagree about which component a pixel belongs to.
type Mismatch struct {
	X, Y        int
	GotLabel    int32
	OracleGroup int
}

// VerifyLabeling re-derives white and black connected components with an
// 8-connected flood fill over white/black directly, then checks that
// every pair of pixels the oracle places in the same component also
// share a label in labeling, and that pixels the oracle places in
// different components never share a label. It returns every pixel
// where that correspondence breaks down.
//
// This only checks partition consistency, not label values: the oracle
// has no notion of the BMRS union-find's numbering, so it cannot tell
// labeling's label 3 "should" be label 3. A passing VerifyLabeling means
// labeling induces the same partition of foreground pixels as a
// straightforward flood fill would, modulo renumbering.
func VerifyLabeling(white, black *binimage.PackedBinaryImage, labeling *ccl.DualLabeling) ([]Mismatch, error) {
	if white.Width != black.Width || white.Height != black.Height {
		return nil, fmt.Errorf("detection: white/black dimension mismatch: %dx%d vs %dx%d",
			white.Width, white.Height, black.Width, black.Height)
	}
	if white.Width != labeling.Image.Width || white.Height != labeling.Image.Height {
		return nil, fmt.Errorf("detection: labeling dimension mismatch: %dx%d vs %dx%d",
			labeling.Image.Width, labeling.Image.Height, white.Width, white.Height)
	}

	width, height := white.Width, white.Height
	oracleGroup, groupCount := floodFillGroups(white, black, width, height)

	// For each pair of oracle groups that actually touches a BMRS label,
	// that label must map to exactly one oracle group and vice versa.
	groupToLabel := make(map[int]int32, groupCount)
	labelToGroup := make(map[int32]int)
	var mismatches []Mismatch

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			group := oracleGroup[y*width+x]
			if group < 0 {
				continue // background in both views
			}
			label := labeling.Image.At(x, y)
			if label == 0 {
				mismatches = append(mismatches, Mismatch{X: x, Y: y, GotLabel: label, OracleGroup: group})
				continue
			}

			if wantLabel, ok := groupToLabel[group]; ok && wantLabel != label {
				mismatches = append(mismatches, Mismatch{X: x, Y: y, GotLabel: label, OracleGroup: group})
			} else if !ok {
				groupToLabel[group] = label
			}

			if wantGroup, ok := labelToGroup[label]; ok && wantGroup != group {
				mismatches = append(mismatches, Mismatch{X: x, Y: y, GotLabel: label, OracleGroup: group})
			} else if !ok {
				labelToGroup[label] = group
			}
		}
	}

	return mismatches, nil
}

// floodFillGroups assigns each foreground pixel (set in either white or
// black) a dense oracle group id via 8-connected flood fill, keeping
// white and black components separate since the two polarities are
// never 8-connected to each other in this pipeline's sense. Background
// pixels get group -1.
func floodFillGroups(white, black *binimage.PackedBinaryImage, width, height int) ([]int, int) {
	groups := make([]int, width*height)
	for i := range groups {
		groups[i] = -1
	}

	nextGroup := 0
	visit := func(isSet func(x, y int) bool) {
		for sy := 0; sy < height; sy++ {
			for sx := 0; sx < width; sx++ {
				if !isSet(sx, sy) || groups[sy*width+sx] != -1 {
					continue
				}
				floodFill(isSet, groups, width, height, sx, sy, nextGroup)
				nextGroup++
			}
		}
	}

	visit(white.TestBit)
	visit(black.TestBit)

	return groups, nextGroup
}

// floodFill performs an 8-connected flood fill from (startX, startY),
// stamping every reachable pixel satisfying isSet with group in groups.
func floodFill(isSet func(x, y int) bool, groups []int, width, height, startX, startY, group int) {
	type point struct{ x, y int }
	stack := []point{{startX, startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.x < 0 || p.x >= width || p.y < 0 || p.y >= height {
			continue
		}
		idx := p.y*width + p.x
		if groups[idx] != -1 || !isSet(p.x, p.y) {
			continue
		}
		groups[idx] = group

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, point{p.x + dx, p.y + dy})
			}
		}
	}
}
