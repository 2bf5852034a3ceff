package quadfit

import (
	"errors"
	"sort"

	"github.com/ironsheep/simdtag-go/internal/cluster"
)

// ErrInvalidDimensions is returned when Fit is given non-positive image
// dimensions.
var ErrInvalidDimensions = errors.New("quadfit: width and height must be positive")

// Options configures bucket pruning.
type Options struct {
	// MinClusterPixels is the minimum surviving bucket size; spec's
	// named default is 24 (a quad has 4 edges of at least several
	// pixels each).
	MinClusterPixels int
	// MaxClusterMultiplier bounds bucket size at MaxClusterMultiplier *
	// (2*(width+height)), the image's own maximum conceivable
	// perimeter.
	MaxClusterMultiplier int
	// MinBoundingBoxArea is the smallest bounding-box area, in encoded
	// (2x, 2y) units, a bucket's points may span and still be treated
	// as a quad candidate. Buckets below this are rejected as too
	// small to be a real tag outline even if their point count passed
	// MinClusterPixels (e.g. noise scattered densely over a small
	// region). Not named numerically in spec's "nominal tag-width
	// threshold" language; the default approximates a tag no smaller
	// than a 6x6 pixel square (6*2=12 per side in encoded units).
	MinBoundingBoxArea int
}

// DefaultOptions returns spec.md's named defaults.
func DefaultOptions() Options {
	return Options{MinClusterPixels: 24, MaxClusterMultiplier: 2, MinBoundingBoxArea: 12 * 12}
}

// Center perturbation constants: a small fixed irrational offset in
// 2*coord space, applied to the bounding-box midpoint so no boundary
// point's angle is ever exactly on an axis.
const (
	centerDitherX = 0.05118
	centerDitherY = -0.028581
)

const (
	slopeScale     = 1 << 20
	quadrantShift  = 30
	surrogateMask  = (1 << quadrantShift) - 1
)

// Quad is one pruned, angularly-sorted gradient cluster: a candidate
// boundary for the line/quad fitter that follows.
type Quad struct {
	Key    uint32
	CX, CY float64
	Points []cluster.GradientPoint
}

// Fit prunes buckets by size, computes each survivor's dithered
// center, and sorts its points into angular order around that center.
func Fit(buckets cluster.Buckets, width, height int, opts Options) ([]Quad, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	maxSize := opts.MaxClusterMultiplier * (2 * (width + height))
	quads := make([]Quad, 0, len(buckets))

	for key, points := range buckets {
		n := len(points)
		if n < opts.MinClusterPixels || n > maxSize {
			continue
		}

		xmin, xmax, ymin, ymax := boundingBox(points)
		area := (xmax - xmin) * (ymax - ymin)
		if area < opts.MinBoundingBoxArea {
			continue
		}

		cx, cy := ditherCenter(xmin, xmax, ymin, ymax)
		sorted := make([]cluster.GradientPoint, n)
		copy(sorted, points)
		sortByAngle(sorted, cx, cy)

		quads = append(quads, Quad{Key: key, CX: cx, CY: cy, Points: sorted})
	}

	return quads, nil
}

// boundingBox reduces the points' raw encoded (2x+dx, 2y+dy) fields to
// an axis-aligned bounding box.
func boundingBox(points []cluster.GradientPoint) (xmin, xmax, ymin, ymax int) {
	xmin, xmax = points[0].EncodedX(), points[0].EncodedX()
	ymin, ymax = points[0].EncodedY(), points[0].EncodedY()
	for _, p := range points[1:] {
		x, y := p.EncodedX(), p.EncodedY()
		xmin, xmax = min(xmin, x), max(xmax, x)
		ymin, ymax = min(ymin, y), max(ymax, y)
	}
	return xmin, xmax, ymin, ymax
}

// ditherCenter returns the dithered midpoint of a bounding box.
func ditherCenter(xmin, xmax, ymin, ymax int) (cx, cy float64) {
	cx = float64(xmin+xmax)*0.5 + centerDitherX
	cy = float64(ymin+ymax)*0.5 + centerDitherY
	return cx, cy
}

// sortByAngle sorts points into ascending angular order around (cx, cy)
// using a monotone-per-quadrant integer surrogate in place of atan2.
func sortByAngle(points []cluster.GradientPoint, cx, cy float64) {
	keys := make([]uint32, len(points))
	for i, p := range points {
		keys[i] = angleKey(p, cx, cy)
	}
	sort.Sort(&byAngleKey{points: points, keys: keys})
}

// angleKey classifies (dx, dy) = (EncodedX-cx, EncodedY-cy) into a quadrant and
// computes a rational surrogate strictly monotone in angle within that
// quadrant, then packs quadrant (top 2 bits) and surrogate (bottom 30
// bits) into one sort key.
func angleKey(p cluster.GradientPoint, cx, cy float64) uint32 {
	dx := float64(p.EncodedX()) - cx
	dy := float64(p.EncodedY()) - cy

	var quadrant uint32
	var slope float64
	switch {
	case dy >= 0 && dx >= 0: // quadrant 0: [0, 90)
		quadrant = 0
		slope = dy / (dx + dy)
	case dy >= 0 && dx < 0: // quadrant 1: [90, 180)
		quadrant = 1
		slope = -dx / (-dx + dy)
	case dy < 0 && dx < 0: // quadrant 2: [180, 270)
		quadrant = 2
		slope = -dy / (-dx - dy)
	default: // dy < 0 && dx >= 0, quadrant 3: [270, 360)
		quadrant = 3
		slope = dx / (dx - dy)
	}

	surrogate := uint32(slope*slopeScale) & surrogateMask
	return quadrant<<quadrantShift | surrogate
}

type byAngleKey struct {
	points []cluster.GradientPoint
	keys   []uint32
}

func (b *byAngleKey) Len() int { return len(b.points) }
func (b *byAngleKey) Less(i, j int) bool { return b.keys[i] < b.keys[j] }
func (b *byAngleKey) Swap(i, j int) {
	b.points[i], b.points[j] = b.points[j], b.points[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}
