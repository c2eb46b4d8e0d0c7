// Package charset decodes input files to UTF-8 before they are split into
// fragments. LaTeX sources written by older toolchains are often Latin-1.
package charset

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned for encoding names the WHATWG index does
// not know.
var ErrUnknownEncoding = errors.New("unknown character encoding")

// NewReader returns a reader producing UTF-8 from r, which holds text in
// the named encoding. An empty name means UTF-8. A UTF-8 byte order mark is
// dropped.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" || name == "utf-8" || name == "utf8" {
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// Decode reads all of r as the named encoding.
func Decode(r io.Reader, name string) (string, error) {
	dr, err := NewReader(r, name)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(dr)
	if err != nil {
		return "", fmt.Errorf("decode %s input: %w", name, err)
	}
	return string(data), nil
}
