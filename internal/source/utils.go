package source

import (
	"golang.org/x/text/encoding/unicode"
)

// decodeUTF16 transcodes UTF-16 content (either endianness, detected by
// the byte order mark) to UTF-8. Content without a UTF-16 BOM is
// returned as is.
func decodeUTF16(content []byte) ([]byte, bool, error) {
	if len(content) < 2 {
		return content, false, nil
	}
	isBE := content[0] == 0xFE && content[1] == 0xFF
	isLE := content[0] == 0xFF && content[1] == 0xFE
	if !isBE && !isLE {
		return content, false, nil
	}

	endian := unicode.LittleEndian
	if isBE {
		endian = unicode.BigEndian
	}
	dec := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := dec.Bytes(content)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}
