package liftover

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/grailbio/liftover/interval"
	"github.com/pkg/errors"
)

// ChainSet is the loaded, indexed form of a chain file: every chain keyed by
// its "from" span in an overlap index, plus an ID lookup.  A ChainSet is
// immutable after ReadChains returns and is safe for concurrent readers.
type ChainSet struct {
	detector *interval.OverlapDetector[*Chain]
	byID     map[int]*Chain
}

// Overlapping returns all chains whose "from" span overlaps iv, in ascending
// "from" coordinate order.
func (s *ChainSet) Overlapping(iv interval.Interval) []*Chain {
	return s.detector.Overlaps(iv)
}

// ByID returns the chain with the given ID, or nil.
func (s *ChainSet) ByID(id int) *Chain { return s.byID[id] }

// Len returns the number of chains loaded.
func (s *ChainSet) Len() int { return len(s.byID) }

// FromSeqNames returns the sorted "from" sequence names covered by the set.
func (s *ChainSet) FromSeqNames() []string { return s.detector.SeqNames() }

// chainScanner wraps a line scanner with position tracking for error
// messages.  Per-call instances only; there is no shared reader state.
type chainScanner struct {
	scanner *bufio.Scanner
	name    string
	lineNo  int
}

func (s *chainScanner) next() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	s.lineNo++
	return s.scanner.Text(), true
}

func (s *chainScanner) errorf(format string, args ...interface{}) error {
	return errors.Errorf("%s:%d: "+format, append([]interface{}{s.name, s.lineNo}, args...)...)
}

// ReadChains parses and validates a UCSC chain file, indexing every chain
// under its "from" span.  name is used in error messages only.  Any parse or
// validation failure aborts the whole load: a silently dropped chain would
// make later liftovers look clean while mapping against partial data.
func ReadChains(r io.Reader, name string) (*ChainSet, error) {
	s := &chainScanner{scanner: bufio.NewScanner(r), name: name}
	set := &ChainSet{
		detector: interval.NewOverlapDetector[*Chain](),
		byID:     make(map[int]*Chain),
	}
	for {
		c, err := readChain(s)
		if err != nil {
			return nil, err
		}
		if c == nil {
			break
		}
		if _, ok := set.byID[c.ID]; ok {
			return nil, errors.Errorf("%s: chain id %d appears more than once", name, c.ID)
		}
		set.byID[c.ID] = c
		set.detector.AddLhs(c, c.FromInterval())
	}
	if err := s.scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "%s: reading chain file", name)
	}
	return set, nil
}

// OpenChains reads a chain file from path, transparently decompressing
// formats recognized by base/compress (e.g. .gz).
func OpenChains(ctx context.Context, path string) (*ChainSet, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	var r io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(r, in.Name()); u != nil {
		r = u
	}
	set, err := ReadChains(r, path)
	if closeErr := in.Close(ctx); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, err
	}
	return set, nil
}

// readChain reads one chain (header, block lines, terminal block, blank
// separator).  It returns (nil, nil) at end of input.
func readChain(s *chainScanner) (*Chain, error) {
	var line string
	var ok bool
	for {
		line, ok = s.next()
		if !ok {
			return nil, nil
		}
		if strings.TrimSpace(line) != "" {
			break
		}
	}
	fields := strings.Fields(line)
	if len(fields) != 13 {
		return nil, s.errorf("chain header has %d fields, want 13", len(fields))
	}
	if fields[0] != "chain" {
		return nil, s.errorf("line does not start with 'chain'")
	}
	c := &Chain{}
	var err error
	if c.Score, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return nil, s.errorf("invalid score %q", fields[1])
	}
	c.FromSeq = fields[2]
	// fields[4] is the "from" strand; it is always "+" in chain files.
	if c.FromSize, err = strconv.Atoi(fields[3]); err != nil {
		return nil, s.errorf("invalid from size %q", fields[3])
	}
	if c.FromStart, err = strconv.Atoi(fields[5]); err != nil {
		return nil, s.errorf("invalid from start %q", fields[5])
	}
	if c.FromEnd, err = strconv.Atoi(fields[6]); err != nil {
		return nil, s.errorf("invalid from end %q", fields[6])
	}
	c.ToSeq = fields[7]
	if c.ToSize, err = strconv.Atoi(fields[8]); err != nil {
		return nil, s.errorf("invalid to size %q", fields[8])
	}
	c.ToNegStrand = fields[9] == "-"
	if c.ToStart, err = strconv.Atoi(fields[10]); err != nil {
		return nil, s.errorf("invalid to start %q", fields[10])
	}
	if c.ToEnd, err = strconv.Atoi(fields[11]); err != nil {
		return nil, s.errorf("invalid to end %q", fields[11])
	}
	if c.ID, err = strconv.Atoi(fields[12]); err != nil {
		return nil, s.errorf("invalid chain id %q", fields[12])
	}

	fromBlockStart := c.FromStart
	toBlockStart := c.ToStart
	sawTerminal := false
	for {
		line, ok = s.next()
		if !ok || strings.TrimSpace(line) == "" {
			if !sawTerminal {
				return nil, s.errorf("chain %d ended without a terminal block", c.ID)
			}
			break
		}
		if sawTerminal {
			return nil, s.errorf("chain %d has data after its terminal block", c.ID)
		}
		fields = strings.Fields(line)
		switch len(fields) {
		case 1:
			sawTerminal = true
		case 3:
		default:
			return nil, s.errorf("block line has %d fields, want 1 or 3", len(fields))
		}
		size, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, s.errorf("invalid block size %q", fields[0])
		}
		c.Blocks = append(c.Blocks, ContinuousBlock{
			FromStart: fromBlockStart,
			ToStart:   toBlockStart,
			Length:    size,
		})
		if !sawTerminal {
			dt, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, s.errorf("invalid from gap %q", fields[1])
			}
			dq, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, s.errorf("invalid to gap %q", fields[2])
			}
			fromBlockStart += size + dt
			toBlockStart += size + dq
		}
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s:%d", s.name, s.lineNo)
	}
	return c, nil
}
