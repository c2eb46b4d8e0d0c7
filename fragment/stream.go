package fragment

import (
	"fmt"
	"strings"
)

// Fragment is one opaque unit of rendered output text.
type Fragment struct {
	Text string
}

// Trimmed returns the fragment text without surrounding whitespace. All
// marker recognition is done against the trimmed text.
func (f Fragment) Trimmed() string {
	return strings.TrimSpace(f.Text)
}

// IsBlank reports whether the fragment has been blanked or carries no text.
func (f Fragment) IsBlank() bool {
	return f.Text == ""
}

// Stream is an ordered, growable sequence of fragments with a version
// counter. The zero value is an empty stream ready for use.
type Stream struct {
	frags   []Fragment
	version uint64
}

// NewStream creates a stream holding the given texts in order.
func NewStream(texts ...string) *Stream {
	s := &Stream{}
	s.Append(texts...)
	return s
}

// Append adds texts to the end of the stream.
func (s *Stream) Append(texts ...string) {
	if len(texts) == 0 {
		return
	}
	for _, t := range texts {
		s.frags = append(s.frags, Fragment{Text: t})
	}
	s.version++
}

// Len returns the number of fragments.
func (s *Stream) Len() int {
	return len(s.frags)
}

// At returns the fragment at index i. Like slice indexing it panics when i
// is out of range; scanners only call it with indices below Len.
func (s *Stream) At(i int) Fragment {
	return s.frags[i]
}

// Version returns the current version. It increases on every mutation.
func (s *Stream) Version() uint64 {
	return s.version
}

// Texts returns a copy of the fragment texts in order.
func (s *Stream) Texts() []string {
	out := make([]string, len(s.frags))
	for i, f := range s.frags {
		out[i] = f.Text
	}
	return out
}

// Slice returns a copy of the fragments in [from, to).
func (s *Stream) Slice(from, to int) ([]Fragment, error) {
	if from < 0 || to > len(s.frags) || from > to {
		return nil, fmt.Errorf("slice [%d:%d] of %d fragments: %w", from, to, len(s.frags), ErrOutOfRange)
	}
	out := make([]Fragment, to-from)
	copy(out, s.frags[from:to])
	return out, nil
}

// String concatenates every fragment verbatim, in order.
func (s *Stream) String() string {
	var sb strings.Builder
	for _, f := range s.frags {
		sb.WriteString(f.Text)
	}
	return sb.String()
}

// Replace sets the text of the fragment at index i.
func (s *Stream) Replace(i int, text string) error {
	if i < 0 || i >= len(s.frags) {
		return fmt.Errorf("replace fragment %d of %d: %w", i, len(s.frags), ErrOutOfRange)
	}
	s.frags[i] = Fragment{Text: text}
	s.version++
	return nil
}

// Blank replaces the fragment at index i with an empty fragment, keeping
// its position.
func (s *Stream) Blank(i int) error {
	return s.Replace(i, "")
}

// Insert places texts before index i. Inserting at Len appends.
func (s *Stream) Insert(i int, texts ...string) error {
	if i < 0 || i > len(s.frags) {
		return fmt.Errorf("insert at %d of %d: %w", i, len(s.frags), ErrOutOfRange)
	}
	if len(texts) == 0 {
		return nil
	}
	added := make([]Fragment, len(texts))
	for k, t := range texts {
		added[k] = Fragment{Text: t}
	}
	frags := make([]Fragment, 0, len(s.frags)+len(added))
	frags = append(frags, s.frags[:i]...)
	frags = append(frags, added...)
	frags = append(frags, s.frags[i:]...)
	s.frags = frags
	s.version++
	return nil
}

// Assign replaces the whole content of the stream. The slice is copied.
func (s *Stream) Assign(frags []Fragment) {
	s.frags = append([]Fragment(nil), frags...)
	s.version++
}

// Snapshot stamps the current version of the stream.
func (s *Stream) Snapshot() Snapshot {
	return Snapshot{owner: s, version: s.version}
}

// Check returns ErrStale unless snap was taken from this stream at its
// current version.
func (s *Stream) Check(snap Snapshot) error {
	if snap.owner == nil {
		return fmt.Errorf("result was not computed from a stream: %w", ErrStale)
	}
	if snap.owner != s {
		return fmt.Errorf("result belongs to another stream: %w", ErrStale)
	}
	if snap.version != s.version {
		return fmt.Errorf("computed at version %d, stream is at %d: %w", snap.version, s.version, ErrStale)
	}
	return nil
}

// Snapshot records the stream and version a scan result was computed
// against. The zero value matches no stream.
type Snapshot struct {
	owner   *Stream
	version uint64
}

// Version returns the stamped version.
func (s Snapshot) Version() uint64 {
	return s.version
}
