package interval

import (
	"fmt"
)

// Interval is an immutable genomic range on a named sequence.  Start and End
// are 1-based and inclusive, the convention used by samtools text output and
// by this module's public API; for better or worse, our domain has settled on
// "0-based coordinates in binary/BED files, 1-based in text" as a standard,
// and conversion happens at the parsing boundary, not here.
type Interval struct {
	// Seq is the sequence (chromosome/contig) name.
	Seq string
	// Start is the 1-based first position of the range.
	Start int
	// End is the 1-based last position of the range.  End >= Start for any
	// valid nonempty interval.
	End int
	// NegStrand is true if the interval is on the reverse strand.
	NegStrand bool
	// Name is an optional label carried through transformations.
	Name string
}

// Length returns the number of positions covered.  A zero or negative value
// indicates an empty or malformed interval.
func (i Interval) Length() int { return i.End - i.Start + 1 }

// Valid reports whether the interval describes a nonempty 1-based range.
func (i Interval) Valid() bool { return i.Start >= 1 && i.End >= i.Start }

// Overlaps reports whether i and other share at least one position.  A
// shared boundary position counts as overlap; adjacency does not.
func (i Interval) Overlaps(other Interval) bool {
	return i.Seq == other.Seq && i.Start <= other.End && i.End >= other.Start
}

// Compare orders intervals genomically: by sequence name, then start, then
// end.  It returns a negative value if i sorts before other, zero if the
// positions are equal, and a positive value otherwise.
func (i Interval) Compare(other Interval) int {
	if i.Seq != other.Seq {
		if i.Seq < other.Seq {
			return -1
		}
		return 1
	}
	if i.Start != other.Start {
		return i.Start - other.Start
	}
	return i.End - other.End
}

func (i Interval) String() string {
	return fmt.Sprintf("%s:%d-%d", i.Seq, i.Start, i.End)
}
