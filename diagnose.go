package liftover

import (
	"fmt"

	"github.com/grailbio/liftover/interval"
	"github.com/pkg/errors"
)

// PartialLift reports, for one chain overlapping a query, how much of the
// query that chain could lift and where it would land.  It exists to explain
// liftover failures (no chain, below threshold, ambiguity), not to perform
// a liftover.
type PartialLift struct {
	// ChainID identifies the chain.
	ChainID int
	// Intersection is the part of the query covered by the chain's overall
	// "from" span, 1-based closed.
	Intersection interval.Interval
	// To is the projected target of the aligned part of the intersection, or
	// nil when the intersection falls entirely within inter-block gaps.
	To *interval.Interval
	// Fraction is the fraction of the query's bases that fell inside aligned
	// blocks.
	Fraction float64
}

func (p PartialLift) String() string {
	if p.To == nil {
		return fmt.Sprintf("chain %d: %s lies in a gap (%.3f lifted)",
			p.ChainID, p.Intersection, p.Fraction)
	}
	return fmt.Sprintf("chain %d: %s -> %s (%.3f lifted)",
		p.ChainID, p.Intersection, *p.To, p.Fraction)
}

// Diagnose reports a PartialLift for every chain whose "from" span overlaps
// iv, qualifying or not, in ascending "from" coordinate order.
func (l *LiftOver) Diagnose(iv interval.Interval) ([]PartialLift, error) {
	if iv.Length() <= 0 {
		return nil, errors.Errorf("cannot diagnose zero-length interval %s (%q)", iv, iv.Name)
	}
	qStart, qEnd := zeroBased(iv)
	var out []PartialLift
	for _, c := range l.chains.Overlapping(iv) {
		p := PartialLift{
			ChainID: c.ID,
			Intersection: oneBased(iv.Seq,
				max(qStart, c.FromStart), min(qEnd, c.FromEnd), iv.NegStrand, iv.Name),
		}
		if x, ok := intersect(c, iv); ok {
			p.Fraction = float64(x.length) / float64(iv.Length())
			toStart := c.Blocks[x.firstBlock].ToStart + x.startOffset
			toEnd := c.Blocks[x.lastBlock].ToEnd() - x.offsetFromEnd
			if toEnd > toStart && toStart >= 0 {
				if c.ToNegStrand {
					toStart, toEnd = c.ToSize-toEnd, c.ToSize-toStart
				}
				to := oneBased(c.ToSeq, toStart, toEnd, c.ToNegStrand, iv.Name)
				p.To = &to
			}
		}
		out = append(out, p)
	}
	return out, nil
}
