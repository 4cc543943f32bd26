package driver

import (
	"golang.org/x/text/unicode/norm"

	"soare/internal/source"
)

// loadSource reads path with BOM and CRLF stripped. With nfc set the text
// is also brought to Unicode NFC, so visually equal identifiers and strings
// minify to the same bytes.
func loadSource(path string, nfc bool) ([]byte, source.FileFlags, error) {
	content, flags, err := source.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	if nfc && !norm.NFC.IsNormal(content) {
		content = norm.NFC.Bytes(content)
		flags |= source.FileNormalizedNFC
	}
	return content, flags, nil
}
