package interval

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestIntervalBasics(t *testing.T) {
	iv := Interval{Seq: "chr1", Start: 11, End: 20, Name: "x"}
	expect.EQ(t, iv.Length(), 10)
	expect.True(t, iv.Valid())
	expect.EQ(t, iv.String(), "chr1:11-20")

	empty := Interval{Seq: "chr1", Start: 11, End: 10}
	expect.EQ(t, empty.Length(), 0)
	expect.False(t, empty.Valid())
}

func TestIntervalOverlaps(t *testing.T) {
	a := Interval{Seq: "chr1", Start: 1, End: 5}
	expect.False(t, a.Overlaps(Interval{Seq: "chr1", Start: 6, End: 10}))
	expect.True(t, a.Overlaps(Interval{Seq: "chr1", Start: 5, End: 9}))
	expect.False(t, a.Overlaps(Interval{Seq: "chr2", Start: 1, End: 5}))
}

func TestIntervalCompare(t *testing.T) {
	a := Interval{Seq: "chr1", Start: 10, End: 20}
	expect.True(t, a.Compare(Interval{Seq: "chr2", Start: 1, End: 2}) < 0)
	expect.True(t, a.Compare(Interval{Seq: "chr1", Start: 10, End: 21}) < 0)
	expect.True(t, a.Compare(Interval{Seq: "chr1", Start: 9, End: 20}) > 0)
	expect.EQ(t, a.Compare(Interval{Seq: "chr1", Start: 10, End: 20}), 0)
}
