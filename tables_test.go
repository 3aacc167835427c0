package base64

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTables(t *testing.T) {
	t.Parallel()

	const (
		b64Chars         = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
		invalidDecodeVal = byte(b64Invalid)
		padDecodeVal     = byte(b64Pad)
	)

	is := assert.New(t)

	var seen [64]bool
	var numPad int

	for i := range 256 {
		c := byte(i)

		if c == '=' {
			is.Equal(padDecodeVal, decodeTab[c])
			numPad++
			continue
		}

		idx := strings.IndexByte(b64Chars, c)
		if idx == -1 {
			is.Equal(invalidDecodeVal, decodeTab[c], "byte %d", i)
			continue
		}

		is.Equal(byte(idx), decodeTab[c])
		is.False(seen[idx], "value %d mapped twice", idx)
		seen[idx] = true
	}

	is.Equal(1, numPad)
	for v, ok := range seen {
		is.True(ok, "value %d has no symbol", v)
	}

	// verify hardcoded boundary values
	is.Equal(uint8(0), decodeTab['A'])
	is.Equal(uint8(26), decodeTab['a'])
	is.Equal(uint8(52), decodeTab['0'])
	is.Equal(uint8(62), decodeTab['+'])
	is.Equal(uint8(63), decodeTab['/'])
	is.Equal(invalidDecodeVal, decodeTab['-'])
	is.Equal(invalidDecodeVal, decodeTab['_'])
	is.Equal(invalidDecodeVal, decodeTab[0x80])
}
