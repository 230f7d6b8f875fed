package main

/*
bio-liftover converts genomic intervals from one genome assembly to another
through a UCSC chain file, in the manner of the UCSC liftOver tool.

	bio-liftover -out lifted.tsv -rejects failed.tsv hg19ToHg38.over.chain input.bed

Input intervals are BED-style (zero-based, half-open; gzipped input is
accepted).  Output is a TSV of lifted intervals in 1-based closed
coordinates.  Intervals that cannot be lifted are counted and optionally
written to a rejects file with a reason; they never abort the run.  A
malformed chain or interval file does abort, with a non-zero exit.
*/

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/liftover"
	"github.com/grailbio/liftover/interval"
	"github.com/klauspost/compress/gzip"
)

var (
	minMatch   = flag.Float64("min-match", liftover.DefaultMinMatch, "Minimum fraction of bases that must remap for an interval to lift")
	outPath    = flag.String("out", "", "Output TSV path; default stdout")
	rejectPath = flag.String("rejects", "", "Optional output path for intervals that could not be lifted, with reasons")
	dictPath   = flag.String("dict", "", "Optional SAM/.dict file describing the target build; lifted intervals must land on its sequences")
	oneBasedIn = flag.Bool("one-based", false, "Interpret input interval boundaries as one-based [start, end] instead of the usual zero-based [start, end)")
	explain    = flag.Bool("explain", false, "Add per-chain diagnostic lines for rejected intervals to the rejects file")
)

func bioLiftoverUsage() {
	fmt.Printf("Usage: %s [OPTIONS] chainfile intervalfile\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func writeInterval(w *tsv.Writer, iv interval.Interval) error {
	w.WriteString(iv.Seq)
	w.WriteUint32(uint32(iv.Start))
	w.WriteUint32(uint32(iv.End))
	if iv.NegStrand {
		w.WriteString("-")
	} else {
		w.WriteString("+")
	}
	w.WriteString(iv.Name)
	return w.EndLine()
}

func writeReject(w *tsv.Writer, iv interval.Interval, reason string) error {
	w.WriteString(iv.Seq)
	w.WriteUint32(uint32(iv.Start))
	w.WriteUint32(uint32(iv.End))
	w.WriteString(iv.Name)
	w.WriteString(reason)
	return w.EndLine()
}

func main() {
	flag.Usage = bioLiftoverUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 2 {
		log.Fatalf("Expected exactly two positional arguments (chainfile and intervalfile), got %d; please check flag syntax: '%s'",
			flag.NArg(), strings.Join(flag.Args(), " "))
	}
	chainPath, inputPath := flag.Arg(0), flag.Arg(1)
	ctx := vcontext.Background()

	chains, err := liftover.OpenChains(ctx, chainPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("%s: loaded %d chain(s) covering %d sequence(s)",
		chainPath, chains.Len(), len(chains.FromSeqNames()))
	lifter := liftover.New(chains)
	lifter.MinMatch = *minMatch

	var dict *liftover.Dict
	if *dictPath != "" {
		dictFile, err := file.Open(ctx, *dictPath)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if dict, err = liftover.ReadDict(dictFile.Reader(ctx)); err != nil {
			log.Fatalf("%s: %v", *dictPath, err)
		}
		if err = dictFile.Close(ctx); err != nil {
			log.Fatalf("%s: %v", *dictPath, err)
		}
	}

	in, err := file.Open(ctx, inputPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	reader := io.Reader(in.Reader(ctx))
	if fileio.DetermineType(inputPath) == fileio.Gzip {
		if reader, err = gzip.NewReader(reader); err != nil {
			log.Fatalf("%s: %v", inputPath, err)
		}
	}

	outWriter := io.Writer(os.Stdout)
	var outFile file.File
	if *outPath != "" {
		if outFile, err = file.Create(ctx, *outPath); err != nil {
			log.Fatalf("%v", err)
		}
		outWriter = outFile.Writer(ctx)
	}
	outTSV := tsv.NewWriter(outWriter)

	var rejectFile file.File
	var rejectTSV *tsv.Writer
	if *rejectPath != "" {
		if rejectFile, err = file.Create(ctx, *rejectPath); err != nil {
			log.Fatalf("%v", err)
		}
		rejectTSV = tsv.NewWriter(rejectFile.Writer(ctx))
	}

	nLifted, nRejected := 0, 0
	lineNo := 0
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		lineNo++
		iv, ok, err := parseIntervalLine(scanner.Text(), *oneBasedIn)
		if err != nil {
			log.Fatalf("%s:%d: %v", inputPath, lineNo, err)
		}
		if !ok {
			continue
		}
		lifted, ok, err := lifter.Lift(iv)
		if err != nil {
			log.Fatalf("%s:%d: %v", inputPath, lineNo, err)
		}
		reason := "no unique chain match"
		if ok && dict != nil {
			if n, found := dict.Len(lifted.Seq); !found {
				ok, reason = false, "target sequence "+lifted.Seq+" not in dictionary"
			} else if lifted.End > n {
				ok, reason = false, "lifted interval extends past target sequence end"
			}
		}
		if ok {
			if err = writeInterval(outTSV, lifted); err != nil {
				log.Fatalf("%s: %v", *outPath, err)
			}
			nLifted++
			continue
		}
		nRejected++
		if rejectTSV == nil {
			continue
		}
		if err = writeReject(rejectTSV, iv, reason); err != nil {
			log.Fatalf("%s: %v", *rejectPath, err)
		}
		if *explain {
			diags, err := lifter.Diagnose(iv)
			if err != nil {
				log.Fatalf("%s:%d: %v", inputPath, lineNo, err)
			}
			for _, d := range diags {
				rejectTSV.WriteString("#")
				rejectTSV.WriteString(d.String())
				if err = rejectTSV.EndLine(); err != nil {
					log.Fatalf("%s: %v", *rejectPath, err)
				}
			}
		}
	}
	if err = scanner.Err(); err != nil {
		log.Fatalf("%s: %v", inputPath, err)
	}
	if err = in.Close(ctx); err != nil {
		log.Fatalf("%s: %v", inputPath, err)
	}
	if err = outTSV.Flush(); err != nil {
		log.Fatalf("%v", err)
	}
	if outFile != nil {
		if err = outFile.Close(ctx); err != nil {
			log.Fatalf("%s: %v", *outPath, err)
		}
	}
	if rejectTSV != nil {
		if err = rejectTSV.Flush(); err != nil {
			log.Fatalf("%v", err)
		}
		if err = rejectFile.Close(ctx); err != nil {
			log.Fatalf("%s: %v", *rejectPath, err)
		}
	}
	log.Printf("%s: lifted %d interval(s), rejected %d", inputPath, nLifted, nRejected)
	log.Debug.Printf("exiting")
}
