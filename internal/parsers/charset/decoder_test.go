package charset

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestDetectEncoding(t *testing.T) {
	assert.Equal(t, EncodingUTF8, DetectEncoding([]byte("plain ascii")))
	assert.Equal(t, EncodingUTF8, DetectEncoding([]byte("\xEF\xBB\xBFname")))
	assert.Equal(t, EncodingUTF8, DetectEncoding([]byte("نبتة")))
	assert.Equal(t, EncodingWindows1256, DetectEncoding([]byte{0xE4, 0xC8, 0xCA, 0xC9}))
}

func TestDecode(t *testing.T) {
	got, err := Decode([]byte("\xEF\xBB\xBFname"), EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, "name", got)

	encoded, err := charmap.Windows1256.NewEncoder().Bytes([]byte("نبتة"))
	require.NoError(t, err)
	got, err = Decode(encoded, EncodingWindows1256)
	require.NoError(t, err)
	assert.Equal(t, "نبتة", got)

	latin, err := charmap.Windows1252.NewEncoder().Bytes([]byte("café"))
	require.NoError(t, err)
	got, err = Decode(latin, EncodingWindows1252)
	require.NoError(t, err)
	assert.Equal(t, "café", got)

	_, err = Decode([]byte{0xFF, 0xFE, 0x00}, Encoding("klingon"))
	assert.Error(t, err)
}

func TestReaderFor(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String("crème")
	require.NoError(t, err)

	r, err := ReaderFor("ISO-8859-1", strings.NewReader(encoded))
	require.NoError(t, err)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "crème", string(out))

	_, err = ReaderFor("no-such-charset", strings.NewReader(""))
	assert.Error(t, err)
}
