package liftover

import (
	"fmt"
	"io"

	"github.com/grailbio/liftover/interval"
	"github.com/pkg/errors"
)

// ContinuousBlock is a sub-range of a chain in which the "from" and "to"
// genomes align base for base with no gap.  Coordinates are 0-based,
// half-open; the block covers [FromStart, FromStart+Length) in the "from"
// genome and [ToStart, ToStart+Length) in the "to" genome.
type ContinuousBlock struct {
	FromStart int
	ToStart   int
	Length    int
}

// FromEnd returns the 0-based half-open end of the block in the "from" genome.
func (b ContinuousBlock) FromEnd() int { return b.FromStart + b.Length }

// ToEnd returns the 0-based half-open end of the block in the "to" genome.
func (b ContinuousBlock) ToEnd() int { return b.ToStart + b.Length }

// Chain is one alignment chain from a UCSC chain file: a span of the "from"
// genome, the corresponding (possibly strand-flipped) span of the "to"
// genome, and the ordered gapless blocks that align exactly.  Chain file
// format is described at http://genome.ucsc.edu/goldenPath/help/chain.html.
//
// In UCSC liftOver terminology the "target" is the "from" genome build and
// the "query" is the "to" build; that vocabulary is avoided here.  All
// coordinates are 0-based, half-open.  When ToNegStrand is true, ToStart and
// ToEnd (and every block's ToStart) are positions on the reverse strand of
// the "to" sequence; flipping across ToSize recovers forward-strand
// positions.
//
// Chains are read-only after load: Validate is called by the reader, and
// callers of the liftover engine only ever receive derived Intervals, never
// the chain's internals.
type Chain struct {
	// ID is the chain's identifier, unique within one file.
	ID int
	// Score is not used by liftover but is kept so a chain can be
	// re-serialized.
	Score float64

	FromSeq   string
	FromSize  int
	FromStart int
	FromEnd   int

	ToSeq       string
	ToSize      int
	ToNegStrand bool
	ToStart     int
	ToEnd       int

	// Blocks are ordered by ascending FromStart and are mutually
	// non-overlapping in both genomes.
	Blocks []ContinuousBlock
}

// FromInterval returns the chain's "from" span in the public 1-based closed
// convention, suitable as an OverlapDetector key.
func (c *Chain) FromInterval() interval.Interval {
	return interval.Interval{Seq: c.FromSeq, Start: c.FromStart + 1, End: c.FromEnd}
}

// Validate checks the chain's internal geometry, returning an error naming
// the chain ID on the first violation.
func (c *Chain) Validate() error {
	if err := c.validatePositive("from sequence size", c.FromSize); err != nil {
		return err
	}
	if err := c.validateNonNegative("from start", c.FromStart); err != nil {
		return err
	}
	if err := c.validateNonNegative("from end", c.FromEnd); err != nil {
		return err
	}
	if err := c.validatePositive("to sequence size", c.ToSize); err != nil {
		return err
	}
	if err := c.validateNonNegative("to start", c.ToStart); err != nil {
		return err
	}
	if err := c.validateNonNegative("to end", c.ToEnd); err != nil {
		return err
	}
	if err := c.validatePositive("from length", c.FromEnd-c.FromStart); err != nil {
		return err
	}
	if err := c.validatePositive("to length", c.ToEnd-c.ToStart); err != nil {
		return err
	}
	if c.FromEnd-c.FromStart > c.FromSize {
		return errors.Errorf("chain %d: from span %d exceeds from sequence size %d",
			c.ID, c.FromEnd-c.FromStart, c.FromSize)
	}
	if c.ToEnd-c.ToStart > c.ToSize {
		return errors.Errorf("chain %d: to span %d exceeds to sequence size %d",
			c.ID, c.ToEnd-c.ToStart, c.ToSize)
	}
	if c.FromSeq == "" {
		return errors.Errorf("chain %d: empty from sequence name", c.ID)
	}
	if c.ToSeq == "" {
		return errors.Errorf("chain %d: empty to sequence name", c.ID)
	}
	if len(c.Blocks) == 0 {
		return errors.Errorf("chain %d: empty block list", c.ID)
	}
	first := c.Blocks[0]
	if first.FromStart != c.FromStart {
		return errors.Errorf("chain %d: first block from start %d != chain from start %d",
			c.ID, first.FromStart, c.FromStart)
	}
	if first.ToStart != c.ToStart {
		return errors.Errorf("chain %d: first block to start %d != chain to start %d",
			c.ID, first.ToStart, c.ToStart)
	}
	last := c.Blocks[len(c.Blocks)-1]
	if last.FromEnd() != c.FromEnd {
		return errors.Errorf("chain %d: last block from end %d != chain from end %d",
			c.ID, last.FromEnd(), c.FromEnd)
	}
	if last.ToEnd() != c.ToEnd {
		return errors.Errorf("chain %d: last block to end %d != chain to end %d",
			c.ID, last.ToEnd(), c.ToEnd)
	}
	for i := 1; i < len(c.Blocks); i++ {
		if c.Blocks[i].FromStart < c.Blocks[i-1].FromEnd() {
			return errors.Errorf("chain %d: block %d from starts before previous block ends", c.ID, i)
		}
		if c.Blocks[i].ToStart < c.Blocks[i-1].ToEnd() {
			return errors.Errorf("chain %d: block %d to starts before previous block ends", c.ID, i)
		}
	}
	return nil
}

func (c *Chain) validatePositive(what string, v int) error {
	if v <= 0 {
		return errors.Errorf("chain %d: %s is not positive: %d", c.ID, what, v)
	}
	return nil
}

func (c *Chain) validateNonNegative(what string, v int) error {
	if v < 0 {
		return errors.Errorf("chain %d: %s is negative: %d", c.ID, what, v)
	}
	return nil
}

// WriteTo writes the chain in UCSC chain text format, including the
// terminating blank line.
func (c *Chain) WriteTo(w io.Writer) error {
	strand := "+"
	if c.ToNegStrand {
		strand = "-"
	}
	if _, err := fmt.Fprintf(w, "chain %g %s %d + %d %d %s %d %s %d %d %d\n",
		c.Score, c.FromSeq, c.FromSize, c.FromStart, c.FromEnd,
		c.ToSeq, c.ToSize, strand, c.ToStart, c.ToEnd, c.ID); err != nil {
		return err
	}
	for i := 0; i < len(c.Blocks)-1; i++ {
		cur, next := c.Blocks[i], c.Blocks[i+1]
		if _, err := fmt.Fprintf(w, "%d %d %d\n",
			cur.Length, next.FromStart-cur.FromEnd(), next.ToStart-cur.ToEnd()); err != nil {
			return err
		}
	}
	last := c.Blocks[len(c.Blocks)-1]
	if _, err := fmt.Fprintf(w, "%d\n\n", last.Length); err != nil {
		return err
	}
	return nil
}
