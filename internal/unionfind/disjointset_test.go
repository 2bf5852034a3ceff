package unionfind

import "testing"

func TestNewLabel_AssignsSequentialIds(t *testing.T) {
	d := New(4)
	a := d.NewLabel()
	b := d.NewLabel()
	c := d.NewLabel()
	if a != 1 || b != 2 || c != 3 {
		t.Fatalf("got %d,%d,%d want 1,2,3", a, b, c)
	}
}

func TestMerge_AttachesLargerRootUnderSmaller(t *testing.T) {
	d := New(4)
	a := d.NewLabel() // 1
	b := d.NewLabel() // 2
	c := d.NewLabel() // 3

	root := d.Merge(b, c) // merges 2,3 -> root should be 2
	if root != 2 {
		t.Fatalf("Merge(2,3) = %d, want 2", root)
	}
	root = d.Merge(a, root) // merges 1 with {2,3} -> root should be 1
	if root != 1 {
		t.Fatalf("Merge(1,2) = %d, want 1", root)
	}
	if d.FindRoot(a) != 1 || d.FindRoot(b) != 1 || d.FindRoot(c) != 1 {
		t.Errorf("expected all three labels to share root 1")
	}
}

func TestFlatten_ProducesDenseLabelsAndCounts(t *testing.T) {
	d := New(4)
	a := d.NewLabel()
	b := d.NewLabel()
	c := d.NewLabel()
	other := d.NewLabel()

	d.IncrementCount(a)
	d.IncrementCount(a)
	d.IncrementCount(b)
	d.IncrementCount(c)
	d.IncrementCount(other)

	d.Merge(a, b)
	d.Merge(a, c)

	mapping, numLabels := d.Flatten()
	if numLabels != 2 {
		t.Fatalf("numLabels = %d, want 2", numLabels)
	}
	if mapping[a] != mapping[b] || mapping[a] != mapping[c] {
		t.Errorf("expected a, b, c to map to the same final label")
	}
	if mapping[other] == mapping[a] {
		t.Errorf("expected other to map to a distinct final label")
	}

	counts := d.FinalCounts(mapping, numLabels)
	if counts[mapping[a]] != 4 {
		t.Errorf("merged component count = %d, want 4", counts[mapping[a]])
	}
	if counts[mapping[other]] != 1 {
		t.Errorf("other component count = %d, want 1", counts[mapping[other]])
	}
}

func TestFindRoot_SelfRootedLabelIsItsOwnRoot(t *testing.T) {
	d := New(1)
	a := d.NewLabel()
	if d.FindRoot(a) != a {
		t.Errorf("FindRoot(%d) = %d, want %d", a, d.FindRoot(a), a)
	}
}
