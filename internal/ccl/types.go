package ccl

// Run is a maximal horizontal span of set bits within one packed row,
// End exclusive. Label is the raw (pre-flatten) union-find label
// assigned to the run before its component is merged with neighbors.
type Run struct {
	Start, End int
	Label      int
}

// LabelImage is a dense, row-major label buffer. Label 0 means
// background: unset, an ambiguous (127) pixel, or part of a component
// pruned for being too small.
type LabelImage struct {
	Width  int
	Height int
	Labels []int32
}

func newLabelImage(width, height int) *LabelImage {
	return &LabelImage{Width: width, Height: height, Labels: make([]int32, width*height)}
}

// At returns the label at (x, y).
func (l *LabelImage) At(x, y int) int32 {
	return l.Labels[y*l.Width+x]
}

func (l *LabelImage) set(x, y int, v int32) {
	l.Labels[y*l.Width+x] = v
}

// Labeling is the result of labeling one polarity in isolation: the
// dense label image and each final label's pixel population.
type Labeling struct {
	Image  *LabelImage
	Counts []int // indexed by final label, Counts[0] is unused
}

// DualLabeling is the white and black polarity labelings collapsed into
// one combined label image, as spec'd: each pixel carries the label of
// its own polarity, and the two polarities' label id spaces are
// disjoint by construction (both draw from one shared union-find, white
// labels allocated before any black label), so a caller can tell a
// label's polarity without consulting the source pixel.
type DualLabeling struct {
	Image  *LabelImage
	Counts []int  // indexed by final label, Counts[0] is unused
	White  []bool // indexed by final label; true if the label is white-polarity
}
