package interval

import (
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestDetectorBasic(t *testing.T) {
	d := NewOverlapDetector[string]()
	d.AddLhs("geneA", Interval{Seq: "chr1", Start: 100, End: 200})
	d.AddLhs("geneB", Interval{Seq: "chr1", Start: 150, End: 300})
	d.AddLhs("geneC", Interval{Seq: "chr2", Start: 100, End: 200})

	got := d.Overlaps(Interval{Seq: "chr1", Start: 180, End: 190})
	assert.EQ(t, got, []string{"geneA", "geneB"})

	got = d.Overlaps(Interval{Seq: "chr1", Start: 250, End: 400})
	assert.EQ(t, got, []string{"geneB"})

	expect.EQ(t, len(d.Overlaps(Interval{Seq: "chr3", Start: 1, End: 1000})), 0)
	expect.EQ(t, len(d.Overlaps(Interval{Seq: "chr1", Start: 301, End: 400})), 0)
	expect.EQ(t, d.SeqNames(), []string{"chr1", "chr2"})
	expect.EQ(t, d.Len(), 3)
}

func TestDetectorPoint(t *testing.T) {
	d := NewOverlapDetector[int]()
	d.AddLhs(1, Interval{Seq: "chr1", Start: 10, End: 20})
	expect.EQ(t, d.OverlapsPoint("chr1", 10), []int{1})
	expect.EQ(t, d.OverlapsPoint("chr1", 20), []int{1})
	expect.EQ(t, len(d.OverlapsPoint("chr1", 21)), 0)
	expect.EQ(t, len(d.OverlapsPoint("chr1", 9)), 0)
}

func TestDetectorMultiplicity(t *testing.T) {
	d := NewOverlapDetector[string]()
	// The same value at two different coordinates is returned once per
	// coordinate.
	d.AddLhs("v", Interval{Seq: "chr1", Start: 10, End: 20})
	d.AddLhs("v", Interval{Seq: "chr1", Start: 30, End: 40})
	got := d.Overlaps(Interval{Seq: "chr1", Start: 1, End: 100})
	assert.EQ(t, got, []string{"v", "v"})

	// An identical (coordinates, value) pair is stored once.
	d.AddLhs("v", Interval{Seq: "chr1", Start: 10, End: 20})
	got = d.Overlaps(Interval{Seq: "chr1", Start: 1, End: 100})
	assert.EQ(t, got, []string{"v", "v"})
	expect.EQ(t, d.Len(), 2)

	// Distinct values at the same coordinates are kept in insertion order.
	d.AddLhs("w", Interval{Seq: "chr1", Start: 10, End: 20})
	got = d.Overlaps(Interval{Seq: "chr1", Start: 10, End: 20})
	assert.EQ(t, got, []string{"v", "w", "v"})
}

func TestDetectorOrder(t *testing.T) {
	d := NewOverlapDetector[int]()
	d.AddLhs(3, Interval{Seq: "chr1", Start: 50, End: 60})
	d.AddLhs(1, Interval{Seq: "chr1", Start: 10, End: 100})
	d.AddLhs(2, Interval{Seq: "chr1", Start: 10, End: 200})
	got := d.Overlaps(Interval{Seq: "chr1", Start: 1, End: 1000})
	assert.EQ(t, got, []int{1, 2, 3})
}
