// Package region locates table environments and figure wrappers in a
// fragment stream.
//
// Scans run backward from the end of the stream because callers invoke them
// right after a table has been produced: the region of interest is always a
// suffix of the stream, so a scan costs the size of one table, not of the
// document.
package region

import (
	"errors"
	"fmt"

	"github.com/tsawler/texbody/fragment"
	"github.com/tsawler/texbody/marker"
)

var (
	// ErrNoTable is returned when the stream has no complete table
	// environment at its end.
	ErrNoTable = errors.New("no table environment")

	// ErrNestedTable is returned when another table environment opens or
	// closes inside the one being located. Nesting is unsupported.
	ErrNestedTable = errors.New("nested table environment")
)

// Region is the inclusive fragment range [Begin, End] of one table
// environment. Begin and End hold the environment's delimiters.
type Region struct {
	Kind  marker.Kind
	Begin int
	End   int

	snap fragment.Snapshot
}

// Snapshot returns the stream version the region was computed against.
func (r Region) Snapshot() fragment.Snapshot {
	return r.snap
}

// Len returns the number of fragments in the region, delimiters included.
func (r Region) Len() int {
	return r.End - r.Begin + 1
}

// Contains reports whether index i lies strictly between the delimiters.
func (r Region) Contains(i int) bool {
	return i > r.Begin && i < r.End
}

func (r Region) String() string {
	return fmt.Sprintf("%s[%d:%d]", r.Kind, r.Begin, r.End)
}

// FigurePrefix marks the fragment opening the figure that wraps a table.
type FigurePrefix struct {
	Start int

	snap fragment.Snapshot
}

// Snapshot returns the stream version the prefix was computed against.
func (p FigurePrefix) Snapshot() fragment.Snapshot {
	return p.snap
}

// FindTable locates the last table environment in s. The last End literal
// in the stream fixes the kind, and the scan continues backward to the
// matching Begin literal.
//
// A missing End or Begin, or another table delimiter between them, is a
// *fragment.StructuralError.
func FindTable(s *fragment.Stream) (Region, error) {
	const op = "find table"

	end := -1
	kind := marker.Unknown
	for i := s.Len() - 1; i >= 0; i-- {
		if k := marker.EndKind(s.At(i).Text); k != marker.Unknown {
			end, kind = i, k
			break
		}
	}
	if end < 0 {
		return Region{}, fragment.NewStructuralError(op, s.Len(), ErrNoTable,
			"no table end literal in %d fragments", s.Len())
	}

	for i := end - 1; i >= 0; i-- {
		text := s.At(i).Text
		if kind.MatchesBegin(text) {
			return Region{Kind: kind, Begin: i, End: end, snap: s.Snapshot()}, nil
		}
		if k := marker.EndKind(text); k != marker.Unknown {
			return Region{}, fragment.NewStructuralError(op, i, ErrNestedTable,
				"%s closes inside %s ending at fragment %d", k, kind, end)
		}
		if k := marker.BeginKind(text); k != marker.Unknown {
			return Region{}, fragment.NewStructuralError(op, i, ErrNestedTable,
				"%s opens inside %s ending at fragment %d", k, kind, end)
		}
	}

	return Region{}, fragment.NewStructuralError(op, end, ErrNoTable,
		"%s has no matching %s", kind.End(), kind.Begin())
}

// At returns the region of kind k delimited by fragments begin and end of
// s, stamped with the current stream version. Callers that moved a known
// region use it instead of rescanning, which would find the last table in
// the stream rather than the one they moved.
func At(s *fragment.Stream, k marker.Kind, begin, end int) (Region, error) {
	if begin < 0 || end >= s.Len() || begin >= end {
		return Region{}, fmt.Errorf("%s[%d:%d] in %d fragments: %w",
			k, begin, end, s.Len(), fragment.ErrOutOfRange)
	}
	if !k.MatchesBegin(s.At(begin).Text) || !k.MatchesEnd(s.At(end).Text) {
		return Region{}, fragment.NewStructuralError("table at", begin, ErrNoTable,
			"fragments %d and %d do not delimit a %s", begin, end, k)
	}
	return Region{Kind: k, Begin: begin, End: end, snap: s.Snapshot()}, nil
}

// FindFigurePrefix scans backward from before-1 for the fragment opening a
// figure. A table without an enclosing figure is normal, so the second
// result is false rather than an error when nothing is found.
func FindFigurePrefix(s *fragment.Stream, before int) (FigurePrefix, bool, error) {
	if before < 0 || before > s.Len() {
		return FigurePrefix{}, false, fmt.Errorf("figure prefix before %d of %d: %w",
			before, s.Len(), fragment.ErrOutOfRange)
	}
	for i := before - 1; i >= 0; i-- {
		if marker.IsFigureBegin(s.At(i).Text) {
			return FigurePrefix{Start: i, snap: s.Snapshot()}, true, nil
		}
	}
	return FigurePrefix{}, false, nil
}

// FindFigurePrefixFor finds the figure wrapping region r.
func FindFigurePrefixFor(s *fragment.Stream, r Region) (FigurePrefix, bool, error) {
	if err := s.Check(r.snap); err != nil {
		return FigurePrefix{}, false, fmt.Errorf("figure prefix for %s: %w", r, err)
	}
	return FindFigurePrefix(s, r.Begin)
}
