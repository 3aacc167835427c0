// A whitespace tolerant, padding strict standard base64 decoder.

package base64

const (
	b64Invalid = 0xFF
	b64Pad     = 0xFE

	b64PadChar = '='
)

//
// decode table uses the standard RFC 4648 alphabet, not the url-safe one
//

var decodeTab = func() [256]byte {
	const b64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"+/"

	var dec [256]byte

	for i := range dec {
		dec[i] = b64Invalid
	}

	for i := range b64Chars {
		dec[b64Chars[i]] = byte(i)
	}

	// pad stays distinguishable after lookup
	dec[b64PadChar] = b64Pad

	return dec
}()
