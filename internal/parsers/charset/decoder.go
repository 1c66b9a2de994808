package charset

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Encoding represents a text encoding
type Encoding string

const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingWindows1256 Encoding = "windows-1256"
	EncodingWindows1252 Encoding = "windows-1252"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectEncoding detects the encoding of a byte buffer.
// Spreadsheet tools on Arabic Windows locales save CSV as Windows-1256,
// so non-UTF-8 input is assumed to be that.
func DetectEncoding(data []byte) Encoding {
	if bytes.HasPrefix(data, utf8BOM) || utf8.Valid(data) {
		return EncodingUTF8
	}
	return EncodingWindows1256
}

// Decode converts a byte buffer from the specified encoding to a UTF-8 string
func Decode(data []byte, enc Encoding) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	// Valid UTF-8 is never re-decoded, whatever the caller asked for
	if enc == EncodingUTF8 || enc == "" || utf8.Valid(data) {
		return string(data), nil
	}

	e, err := lookup(enc)
	if err != nil {
		return "", err
	}
	out, _, err := transform.Bytes(e.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", enc, err)
	}
	return string(out), nil
}

// ReaderFor returns a UTF-8 reader for input declared with the given label.
// It matches the signature of xml.Decoder.CharsetReader.
func ReaderFor(label string, input io.Reader) (io.Reader, error) {
	e, err := lookup(Encoding(strings.ToLower(strings.TrimSpace(label))))
	if err != nil {
		return nil, err
	}
	return transform.NewReader(input, e.NewDecoder()), nil
}

func lookup(enc Encoding) (encoding.Encoding, error) {
	switch enc {
	case EncodingWindows1256:
		return charmap.Windows1256, nil
	case EncodingWindows1252:
		return charmap.Windows1252, nil
	}
	e, err := htmlindex.Get(string(enc))
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", enc, err)
	}
	return e, nil
}
