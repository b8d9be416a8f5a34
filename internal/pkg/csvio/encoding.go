package csvio

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectAndDecode converts data to UTF-8 and returns the detected encoding name.
// BOM-marked UTF-8 and UTF-16 are honoured; invalid UTF-8 without a BOM is read as Latin-1.
func DetectAndDecode(data []byte) ([]byte, string, error) {
	switch {
	case len(data) == 0:
		return data, "utf-8", nil
	case bytes.HasPrefix(data, bomUTF8):
		return data[len(bomUTF8):], "utf-8-bom", nil
	case bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		name := "utf-16le"
		if bytes.HasPrefix(data, bomUTF16BE) {
			name = "utf-16be"
		}
		decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return nil, "", fmt.Errorf("%s decode failed: %w", name, err)
		}
		return decoded, name, nil
	case utf8.Valid(data):
		return data, "utf-8", nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, "", fmt.Errorf("latin-1 decode failed: %w", err)
	}
	return decoded, "latin-1", nil
}
