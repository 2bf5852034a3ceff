package unionfind

// DisjointSet is an array-backed union-find over 1-based label ids.
// Label 0 is reserved and never assigned.
type DisjointSet struct {
	tree       []int
	labelCount []int
	length     int
}

// New creates a disjoint set with room for initialCapacity labels
// pre-reserved, avoiding reallocation for the common case.
func New(initialCapacity int) *DisjointSet {
	if initialCapacity < 1 {
		initialCapacity = 1
	}
	return &DisjointSet{
		tree:       make([]int, 1, initialCapacity+1),
		labelCount: make([]int, 1, initialCapacity+1),
		length:     1,
	}
}

// NewLabel reserves a fresh label, initially its own root, and returns it.
func (d *DisjointSet) NewLabel() int {
	id := d.length
	if id == len(d.tree) {
		d.tree = append(d.tree, id)
		d.labelCount = append(d.labelCount, 0)
	} else {
		d.tree[id] = id
		d.labelCount[id] = 0
	}
	d.length++
	return id
}

// FindRoot walks up to the root of label's tree without path compression.
func (d *DisjointSet) FindRoot(label int) int {
	for d.tree[label] < label {
		label = d.tree[label]
	}
	return label
}

// Merge unions the components containing i and j, attaching the larger
// root under the smaller one, and returns the surviving root.
func (d *DisjointSet) Merge(i, j int) int {
	i = d.FindRoot(i)
	j = d.FindRoot(j)
	if i < j {
		d.tree[j] = i
		return i
	}
	d.tree[i] = j
	return j
}

// IncrementCount records one more pixel assigned to the given raw label.
func (d *DisjointSet) IncrementCount(label int) {
	d.labelCount[label]++
}

// Len reports the number of labels allocated so far, including label 0.
func (d *DisjointSet) Len() int {
	return d.length
}

// Flatten compacts every label's root into a dense, 1-based id and
// returns the mapping from raw label to final label (mapping[0] is
// unused), along with the number of distinct final labels. It mutates
// the set's internal tree in place; the set must not be used for
// further Merge/FindRoot calls afterward.
func (d *DisjointSet) Flatten() (mapping []int, numLabels int) {
	k := 1
	for i := 1; i < d.length; i++ {
		if d.tree[i] < i {
			d.tree[i] = d.tree[d.tree[i]]
		} else {
			d.tree[i] = k
			k++
		}
	}
	return d.tree[:d.length], k - 1
}

// FinalCounts sums each raw label's pixel count into its mapped final
// label, given the mapping returned by Flatten.
func (d *DisjointSet) FinalCounts(mapping []int, numLabels int) []int {
	counts := make([]int, numLabels+1)
	for i := 1; i < len(mapping); i++ {
		counts[mapping[i]] += d.labelCount[i]
	}
	return counts
}
