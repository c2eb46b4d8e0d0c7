package charset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		input    []byte
		want     string
	}{
		{"empty name is utf-8", "", []byte("Stra\xc3\x9fe"), "Straße"},
		{"utf-8 bom dropped", "UTF-8", []byte("\xef\xbb\xbf\\hline"), `\hline`},
		{"latin1", "latin1", []byte("Stra\xdfe \\hline"), `Straße \hline`},
		{"windows-1252", "windows-1252", []byte("\x80 5"), "€ 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(bytes.NewReader(tt.input), tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewReader_Unknown(t *testing.T) {
	_, err := NewReader(strings.NewReader("x"), "klingon")
	assert.ErrorIs(t, err, ErrUnknownEncoding)

	_, err = Decode(strings.NewReader("x"), "klingon")
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}
