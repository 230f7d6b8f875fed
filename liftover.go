// Package liftover maps genomic intervals between genome assemblies through
// UCSC chain files, in the manner of the UCSC liftOver tool.  Only basic
// liftover is implemented: an interval lifts when exactly one chain covers
// enough of it, and fails softly otherwise.
//
// Internally all chain geometry is 0-based, half-open, matching the chain
// file format; the public API speaks the 1-based closed interval.Interval
// convention, and the conversion happens in exactly one pair of helpers
// (zeroBased/oneBased) at the boundary.
package liftover

import (
	"github.com/grailbio/liftover/interval"
	"github.com/pkg/errors"
)

// DefaultMinMatch is the default minimum fraction of an interval's bases
// that must remap for a liftover to succeed.
const DefaultMinMatch = 0.95

// LiftOver lifts intervals from a chain set's "from" build to its "to"
// build.  Construct with New; the chain set must not be mutated afterwards.
// A LiftOver is safe for concurrent use: Lift is a pure function of the
// loaded chains and its arguments.
type LiftOver struct {
	chains *ChainSet

	// MinMatch is the minimum fraction of bases that must remap, applied by
	// Lift.  Set it before querying; defaults to DefaultMinMatch.
	MinMatch float64
}

// New returns a LiftOver over the given chain set with the default
// minimum-match fraction.
func New(chains *ChainSet) *LiftOver {
	return &LiftOver{chains: chains, MinMatch: DefaultMinMatch}
}

// Lift maps iv to the "to" build.  The three outcomes are distinct:
//
//	result, true, nil    -- lifted
//	_, false, nil        -- not liftable (no chain, below threshold, or
//	                        more than one qualifying chain)
//	_, false, err        -- usage error (empty interval) or an internal
//	                        consistency violation in the chain data
//
// A zero-length interval is rejected rather than coerced, since a match
// fraction of nothing is meaningless.  Multiple qualifying chains make the
// mapping ambiguous, and ambiguity is deliberately a no-match rather than a
// best-of-N choice: silently picking one plausible mapping could silently
// produce wrong coordinates.  Use Diagnose to explain a failed lift.
func (l *LiftOver) Lift(iv interval.Interval) (interval.Interval, bool, error) {
	return l.LiftWithMinMatch(iv, l.MinMatch)
}

// LiftWithMinMatch is Lift with an explicit minimum-match fraction.
func (l *LiftOver) LiftWithMinMatch(iv interval.Interval, minMatch float64) (interval.Interval, bool, error) {
	if iv.Length() <= 0 {
		return interval.Interval{}, false, errors.Errorf(
			"cannot lift over zero-length interval %s (%q)", iv, iv.Name)
	}
	minMatchSize := minMatch * float64(iv.Length())

	var (
		hit  *Chain
		hitX targetIntersection
	)
	for _, c := range l.chains.Overlapping(iv) {
		x, ok := intersect(c, iv)
		if !ok || float64(x.length) < minMatchSize {
			continue
		}
		if hit != nil {
			// Multiple qualifying chains: the mapping is ambiguous.
			return interval.Interval{}, false, nil
		}
		hit, hitX = c, x
	}
	if hit == nil {
		return interval.Interval{}, false, nil
	}

	// The "to" side of the intersected blocks must cover at least as much as
	// the threshold demands; anything less means the chain data or the
	// intersection bookkeeping is broken, which the caller cannot recover
	// from.
	toLen := 0
	for i := hitX.firstBlock; i <= hitX.lastBlock; i++ {
		toLen += hit.Blocks[i].Length
	}
	toLen -= hitX.startOffset + hitX.offsetFromEnd
	if toLen < 0 || float64(toLen) < minMatchSize {
		return interval.Interval{}, false, errors.Errorf(
			"chain %d: inconsistent to-side intersection %d lifting over %s", hit.ID, toLen, iv)
	}

	toStart := hit.Blocks[hitX.firstBlock].ToStart + hitX.startOffset
	toEnd := hit.Blocks[hitX.lastBlock].ToEnd() - hitX.offsetFromEnd
	if toEnd <= toStart || toStart < 0 {
		return interval.Interval{}, false, errors.Errorf(
			"chain %d: invalid target range [%d,%d) lifting over %s", hit.ID, toStart, toEnd, iv)
	}
	if hit.ToNegStrand {
		toStart, toEnd = hit.ToSize-toEnd, hit.ToSize-toStart
	}
	return oneBased(hit.ToSeq, toStart, toEnd, hit.ToNegStrand, iv.Name), true, nil
}

// targetIntersection describes the portion of a chain's blocks overlapped by
// one query interval.  Computed per query, never retained.
type targetIntersection struct {
	// length is the total number of query bases falling inside aligned
	// blocks.  Bases over inter-block gaps are not counted, which is why a
	// chain spanning the query "broadly" can still miss the match threshold.
	length int
	// startOffset is the distance from the first overlapped block's start to
	// the query start (0 when the query begins before the block).
	startOffset int
	// offsetFromEnd is the distance from the query end to the last
	// overlapped block's end (0 when the query runs past the block).
	offsetFromEnd int
	// firstBlock and lastBlock index into Chain.Blocks.
	firstBlock, lastBlock int
}

// intersect walks c's blocks accumulating overlap with iv.  ok is false when
// the query touches no aligned base, i.e. it falls entirely within gaps.
func intersect(c *Chain, iv interval.Interval) (x targetIntersection, ok bool) {
	start, end := zeroBased(iv)
	x.firstBlock = -1
	for i, b := range c.Blocks {
		if b.FromStart >= end {
			break
		}
		if b.FromEnd() <= start {
			continue
		}
		if x.firstBlock == -1 {
			x.firstBlock = i
			if start > b.FromStart {
				x.startOffset = start - b.FromStart
			}
		}
		x.lastBlock = i
		if b.FromEnd() > end {
			x.offsetFromEnd = b.FromEnd() - end
		} else {
			x.offsetFromEnd = 0
		}
		x.length += min(end, b.FromEnd()) - max(start, b.FromStart)
	}
	return x, x.length > 0
}

// zeroBased converts the public 1-based closed interval to the 0-based
// half-open span used by chain geometry.
func zeroBased(iv interval.Interval) (start, end int) {
	return iv.Start - 1, iv.End
}

// oneBased converts a 0-based half-open span back to the public convention.
func oneBased(seq string, start, end int, negStrand bool, name string) interval.Interval {
	return interval.Interval{Seq: seq, Start: start + 1, End: end, NegStrand: negStrand, Name: name}
}
