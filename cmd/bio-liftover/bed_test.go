package main

import (
	"testing"

	"github.com/grailbio/liftover/interval"
	"github.com/grailbio/testutil/expect"
)

func TestParseIntervalLine(t *testing.T) {
	tests := []struct {
		line     string
		oneBased bool
		want     interval.Interval
		skip     bool
		wantErr  bool
	}{
		{line: "chr1\t100\t200", want: interval.Interval{Seq: "chr1", Start: 101, End: 200}},
		{line: "chr1 100 200 myname", want: interval.Interval{Seq: "chr1", Start: 101, End: 200, Name: "myname"}},
		{line: "chr1\t100\t200\tmyname\t0\t-",
			want: interval.Interval{Seq: "chr1", Start: 101, End: 200, Name: "myname", NegStrand: true}},
		{line: "chr1\t100\t200\t.", want: interval.Interval{Seq: "chr1", Start: 101, End: 200}},
		{line: "chr1\t100\t200", oneBased: true, want: interval.Interval{Seq: "chr1", Start: 100, End: 200}},
		{line: "", skip: true},
		{line: "   ", skip: true},
		{line: "# a comment", skip: true},
		{line: "track name=foo", skip: true},
		{line: "browser position chr1", skip: true},
		{line: "chr1\t100", wantErr: true},
		{line: "chr1\tx\t200", wantErr: true},
		{line: "chr1\t100\ty", wantErr: true},
		{line: "chr1\t100\t100", wantErr: true}, // empty (zero-length) interval
		{line: "chr1\t200\t100", wantErr: true}, // inverted
	}
	for _, tt := range tests {
		got, ok, err := parseIntervalLine(tt.line, tt.oneBased)
		if tt.wantErr {
			expect.NotNil(t, err, tt.line)
			continue
		}
		expect.NoError(t, err, tt.line)
		if tt.skip {
			expect.False(t, ok, tt.line)
			continue
		}
		expect.True(t, ok, tt.line)
		expect.EQ(t, got, tt.want, tt.line)
	}
}
