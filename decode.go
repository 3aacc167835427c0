// This base64 decoding implementation silently skips every byte that is not
// part of the standard alphabet or the '=' padding symbol, so line breaks and
// other whitespace from MIME style bodies need no pre-processing. Padding on
// the other hand is validated strictly: it may only occupy the last one or two
// positions of a chunk. Padding in the first or second position of a chunk is
// rejected as well, even though no well-formed encoder could produce it.
//
// A padded chunk does not terminate decoding. Concatenated padded segments
// such as "QQ==QQ==" decode as if each segment were decoded on its own.

package base64

import (
	"errors"
	"io"
	"slices"
)

const symbolsPerChunk = 4

var (
	ErrIncorrectPadding = errors.New("invalid base64 input: incorrect padding")
	ErrTruncatedInput   = errors.New("invalid base64 input: truncated")
)

// DecodedLength returns the maximum number of bytes that
// n bytes of base64 input can decode to. It returns -1 if
// n is negative.
//
// Input containing skipped bytes or padding decodes to
// fewer bytes than this bound.
func DecodedLength(n int) int {
	if n < 0 {
		return -1
	}

	return (n / symbolsPerChunk) * 3
}

// decodeChunk converts 4 symbols into up to 3 bytes written to dst,
// returning how many were produced. A pad in the third position
// followed by a non-pad still produces the first byte alongside
// ErrIncorrectPadding.
func decodeChunk(dst *[3]byte, c *[symbolsPerChunk]byte) (int, error) {
	if c[0] == b64Pad || c[1] == b64Pad {
		return 0, ErrIncorrectPadding
	}

	dst[0] = c[0]<<2 | c[1]>>4

	if c[2] == b64Pad {
		// if the third symbol is pad the fourth must be pad too
		if c[3] != b64Pad {
			return 1, ErrIncorrectPadding
		}

		return 1, nil
	}

	dst[1] = c[1]<<4 | c[2]>>2

	if c[3] == b64Pad {
		return 2, nil
	}

	dst[2] = c[2]<<6 | c[3]

	return 3, nil
}

func decode(w io.Writer, src []byte) (int, error) {
	var cache [symbolsPerChunk]byte
	var out [3]byte
	var cached, outLen int

	for _, b := range src {
		v := decodeTab[b]
		if v == b64Invalid {
			continue
		}

		cache[cached] = v
		cached++
		if cached < symbolsPerChunk {
			continue
		}
		cached = 0

		n, chunkErr := decodeChunk(&out, &cache)
		if n > 0 {
			nw, err := w.Write(out[:n])
			outLen += nw
			if err != nil {
				return outLen, err
			}
			if nw != n {
				return outLen, io.ErrShortWrite
			}
		}
		if chunkErr != nil {
			return outLen, chunkErr
		}
	}

	if cached != 0 {
		return outLen, ErrTruncatedInput
	}

	return outLen, nil
}

// DecodeTo decodes src writing the decoded bytes to w one chunk at a
// time. It returns the number of bytes w accepted.
//
// Bytes outside the base64 alphabet are ignored. ErrIncorrectPadding
// is returned when padding appears anywhere other than the tail of a
// chunk and ErrTruncatedInput when the input ends part way through a
// chunk. Errors returned by w are passed through unchanged.
//
// Bytes decoded before an error are not rolled back. They remain in w
// and are included in the returned count. This includes the first byte
// of a chunk whose third symbol is pad but whose fourth is not.
//
// DecodeTo panics if w is nil.
func DecodeTo(w io.Writer, src []byte) (int, error) {
	// guard statement forcing a panic here rather than on the first
	// completed chunk
	if w == nil {
		panic("base64: decode writer is nil")
	}

	return decode(w, src)
}

type appendWriter struct {
	buf []byte
}

func (w *appendWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// Decode returns the decoded form of src. If src decodes to
// nothing nil is returned.
//
// If an error occurs during decoding then an error will be returned.
//
// If an error is returned the caller must not assume the returned slice
// is nil. It holds every byte decoded before the error was found. If the data is sensitive consider clearing the slice of
// contents.
func Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	w := appendWriter{make([]byte, 0, DecodedLength(len(src)))}

	n, err := decode(&w, src)
	if n == 0 {
		return nil, err
	}

	return w.buf, err
}

// DecodeString is like Decode but takes its input as a string.
func DecodeString(s string) ([]byte, error) {
	return Decode([]byte(s))
}

// AppendDecode returns the decoded form of src appended to dst.
// If src decodes to nothing dst is returned as-is.
//
// If an error is returned the appended portion holds every byte
// decoded before the error was found.
func AppendDecode(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	w := appendWriter{slices.Grow(dst, DecodedLength(len(src)))}

	n, err := decode(&w, src)
	if n == 0 {
		return dst, err
	}

	return w.buf, err
}
