package figure

import (
	"errors"
	"fmt"

	"github.com/tsawler/texbody/fragment"
	"github.com/tsawler/texbody/marker"
	"github.com/tsawler/texbody/region"
)

// ErrPrefixAfterTable is returned when a figure prefix does not precede
// the table it is meant to wrap.
var ErrPrefixAfterTable = errors.New("figure prefix does not precede table")

// Relocate moves the table region r in front of the figure prefix p:
//
//	before ++ prefix ++ table ++ after  =>  before ++ table ++ [Spacing] ++ prefix ++ after
//
// The stream grows by exactly one fragment. A nil prefix means the table
// has no enclosing figure and nothing is moved.
func Relocate(s *fragment.Stream, r region.Region, p *region.FigurePrefix) error {
	if p == nil {
		return nil
	}
	if err := s.Check(r.Snapshot()); err != nil {
		return fmt.Errorf("relocate %s: %w", r, err)
	}
	if err := s.Check(p.Snapshot()); err != nil {
		return fmt.Errorf("relocate figure prefix: %w", err)
	}
	if p.Start >= r.Begin {
		return fragment.NewStructuralError("relocate", p.Start, ErrPrefixAfterTable,
			"figure starts at %d, %s begins at %d", p.Start, r.Kind, r.Begin)
	}

	before, err := s.Slice(0, p.Start)
	if err != nil {
		return err
	}
	prefix, err := s.Slice(p.Start, r.Begin)
	if err != nil {
		return err
	}
	table, err := s.Slice(r.Begin, r.End+1)
	if err != nil {
		return err
	}
	after, err := s.Slice(r.End+1, s.Len())
	if err != nil {
		return err
	}

	frags := make([]fragment.Fragment, 0, s.Len()+1)
	frags = append(frags, before...)
	frags = append(frags, table...)
	frags = append(frags, fragment.Fragment{Text: marker.Spacing})
	frags = append(frags, prefix...)
	frags = append(frags, after...)
	s.Assign(frags)
	return nil
}
