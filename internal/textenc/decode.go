// Package textenc turns raw input bytes into normalised UTF-8 text.
package textenc

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Auto selects the charset from a byte order mark, then UTF-8 validity,
// falling back to Windows-1252.
const Auto = "auto"

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Lookup resolves a WHATWG charset label such as "utf-8", "latin1" or
// "windows-1252".
func Lookup(label string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", label, err)
	}
	return enc, nil
}

// Decode converts data in the given charset to UTF-8. A byte order mark
// always takes precedence over the charset. Line endings are normalised to
// "\n" and the text is put in Unicode normalisation form C.
func Decode(data []byte, charset string) (string, error) {
	enc, err := detect(data, charset)
	if err != nil {
		return "", err
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("decoding input: %w", err)
	}

	return norm.NFC.String(lineEndings.Replace(string(decoded))), nil
}

func detect(data []byte, charset string) (encoding.Encoding, error) {
	label := strings.ToLower(strings.TrimSpace(charset))
	if label != "" && label != Auto {
		return Lookup(label)
	}
	if hasBOM(data) || utf8.Valid(data) {
		return unicode.UTF8, nil
	}
	return charmap.Windows1252, nil
}

func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) ||
		bytes.HasPrefix(data, []byte{0xFE, 0xFF}) ||
		bytes.HasPrefix(data, []byte{0xFF, 0xFE})
}
