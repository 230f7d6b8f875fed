package interval

import (
	"sort"
)

// OverlapDetector indexes payload values under genomic intervals and answers
// "which values overlap this range" queries.  It keeps one IntervalTree per
// sequence name; the index interval passed to AddLhs is purely a key and need
// not match any interval the payload itself may carry.
//
// The detector follows a two-phase discipline: it is populated by a single
// writer during a load phase and is safe for concurrent readers afterwards,
// since queries never mutate the trees.
type OverlapDetector[T comparable] struct {
	trees map[string]*IntervalTree[[]T]
	n     int
}

// NewOverlapDetector returns an empty detector.
func NewOverlapDetector[T comparable]() *OverlapDetector[T] {
	return &OverlapDetector[T]{trees: make(map[string]*IntervalTree[[]T])}
}

// AddLhs indexes value under iv.Seq at the key (iv.Start, iv.End), lazily
// creating the per-sequence tree.  The same value added at distinct
// coordinates is kept once per coordinate; adding an identical
// (coordinates, value) pair again is a no-op.
func (d *OverlapDetector[T]) AddLhs(value T, iv Interval) {
	t := d.trees[iv.Seq]
	if t == nil {
		t = &IntervalTree[[]T]{}
		d.trees[iv.Seq] = t
	}
	values, _ := t.Get(iv.Start, iv.End)
	for _, v := range values {
		if v == value {
			return
		}
	}
	t.Put(iv.Start, iv.End, append(values, value))
	d.n++
}

// Overlaps returns every indexed value whose key interval overlaps iv,
// ordered by ascending key (start, end) and, within one key, by insertion
// order.  An unknown sequence name yields nil.
func (d *OverlapDetector[T]) Overlaps(iv Interval) []T {
	t := d.trees[iv.Seq]
	if t == nil {
		return nil
	}
	var out []T
	t.Visit(iv.Start, iv.End, func(n *TreeNode[[]T]) bool {
		out = append(out, n.Value()...)
		return true
	})
	return out
}

// OverlapsPoint returns every indexed value whose key interval covers the
// single position pos on seq.
func (d *OverlapDetector[T]) OverlapsPoint(seq string, pos int) []T {
	return d.Overlaps(Interval{Seq: seq, Start: pos, End: pos})
}

// SeqNames returns the indexed sequence names in sorted order.
func (d *OverlapDetector[T]) SeqNames() []string {
	names := make([]string, 0, len(d.trees))
	for name := range d.trees {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of distinct (coordinates, value) entries indexed.
func (d *OverlapDetector[T]) Len() int { return d.n }
