package render

import (
	"fmt"
	"io"
	"os"

	"github.com/tsawler/texbody/format"
	"github.com/tsawler/texbody/internal/charset"
)

// Load reads a trace from r. name is used for format detection only;
// encoding names the character encoding of the input ("" for UTF-8).
func Load(r io.Reader, name, encoding string) (Trace, format.Format, error) {
	text, err := charset.Decode(r, encoding)
	if err != nil {
		return Trace{}, format.Unknown, err
	}

	f := format.DetectContent(name, []byte(text))
	switch f {
	case format.Trace:
		t, err := ParseTrace([]byte(text))
		return t, f, err
	case format.Body:
		t, err := ParseBody(text)
		return t, f, err
	default:
		return Trace{}, f, fmt.Errorf("%s: %w: cannot detect input format", name, ErrInvalidTrace)
	}
}

// LoadFile opens and loads the trace at path.
func LoadFile(path, encoding string) (Trace, format.Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return Trace{}, format.Unknown, fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()
	return Load(file, path, encoding)
}
