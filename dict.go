package liftover

import (
	"io"

	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// Dict is a sequence dictionary: the set of sequence names and lengths in a
// genome build.  The CLI uses one to check that lifted intervals land on
// sequences that actually exist in the target build.
type Dict struct {
	lens  map[string]int
	names []string
}

// ReadDict reads a sequence dictionary from SAM header text (a Picard-style
// .dict file, or the header of any SAM file).
func ReadDict(r io.Reader) (*Dict, error) {
	sr, err := sam.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading sequence dictionary")
	}
	d := &Dict{lens: make(map[string]int)}
	for _, ref := range sr.Header().Refs() {
		d.lens[ref.Name()] = ref.Len()
		d.names = append(d.names, ref.Name())
	}
	if len(d.names) == 0 {
		return nil, errors.New("sequence dictionary has no @SQ lines")
	}
	return d, nil
}

// Recognized reports whether name is a sequence in the dictionary.
func (d *Dict) Recognized(name string) bool {
	_, ok := d.lens[name]
	return ok
}

// Len returns the length of the named sequence.
func (d *Dict) Len(name string) (int, bool) {
	n, ok := d.lens[name]
	return n, ok
}

// Names returns the sequence names in dictionary order.
func (d *Dict) Names() []string { return d.names }
