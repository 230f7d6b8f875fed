package liftover

import (
	"strings"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestReadDict(t *testing.T) {
	const dict = "@HD\tVN:1.6\n" +
		"@SQ\tSN:chr1\tLN:248956422\n" +
		"@SQ\tSN:chr2\tLN:242193529\n"
	d, err := ReadDict(strings.NewReader(dict))
	assert.NoError(t, err)
	expect.EQ(t, d.Names(), []string{"chr1", "chr2"})
	expect.True(t, d.Recognized("chr1"))
	expect.False(t, d.Recognized("chrM"))
	n, ok := d.Len("chr2")
	expect.True(t, ok)
	expect.EQ(t, n, 242193529)
	_, ok = d.Len("chrM")
	expect.False(t, ok)
}

func TestReadDictEmpty(t *testing.T) {
	_, err := ReadDict(strings.NewReader("@HD\tVN:1.6\n"))
	expect.NotNil(t, err)
}
