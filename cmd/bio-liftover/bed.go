package main

import (
	"strconv"
	"strings"

	"github.com/grailbio/liftover/interval"
	"github.com/pkg/errors"
)

// parseIntervalLine parses one line of the input interval file: BED-style
// whitespace-separated columns <seq> <start> <end> [<name> [<score>
// [<strand>]]].  Boundaries are the usual zero-based [start, end) unless
// oneBasedInput is set, in which case they are one-based [start, end];
// either way the returned Interval is in the public 1-based closed
// convention, converted here and nowhere else.  Comment, track, and browser
// lines are skipped (ok == false).
func parseIntervalLine(line string, oneBasedInput bool) (iv interval.Interval, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, "track") || strings.HasPrefix(trimmed, "browser") {
		return interval.Interval{}, false, nil
	}
	fields := strings.Fields(trimmed)
	if len(fields) < 3 {
		return interval.Interval{}, false, errors.Errorf("interval line has %d fields, want at least 3", len(fields))
	}
	start, err := strconv.Atoi(fields[1])
	if err != nil {
		return interval.Interval{}, false, errors.Errorf("invalid start %q", fields[1])
	}
	end, err := strconv.Atoi(fields[2])
	if err != nil {
		return interval.Interval{}, false, errors.Errorf("invalid end %q", fields[2])
	}
	iv = interval.Interval{Seq: fields[0], Start: start + 1, End: end}
	if oneBasedInput {
		iv.Start = start
	}
	if len(fields) >= 4 && fields[3] != "." {
		iv.Name = fields[3]
	}
	if len(fields) >= 6 && fields[5] == "-" {
		iv.NegStrand = true
	}
	if !iv.Valid() {
		return interval.Interval{}, false, errors.Errorf("empty or inverted interval %s", iv)
	}
	return iv, true, nil
}
