package figure

import (
	"errors"
	"fmt"

	"github.com/tsawler/texbody/fragment"
	"github.com/tsawler/texbody/marker"
	"github.com/tsawler/texbody/region"
)

// ErrDuplicateMarker is returned when a continuation caption occurs more
// than once inside one table.
var ErrDuplicateMarker = errors.New("duplicate continuation caption")

// PatchContinuationMarkers rewrites the continuation captions inside a
// Paginated region to reference the figure counter instead of the table
// counter. Only the counter reference changes; the rest of each fragment is
// kept. It reports whether any fragment was rewritten.
//
// Other kinds have no continuation captions and are left alone. A caption
// found in more than one fragment is a *fragment.StructuralError and
// nothing is rewritten.
func PatchContinuationMarkers(s *fragment.Stream, r region.Region) (bool, error) {
	if err := s.Check(r.Snapshot()); err != nil {
		return false, fmt.Errorf("patch %s: %w", r, err)
	}
	if r.Kind != marker.Paginated {
		return false, nil
	}

	patched := map[int]string{}
	for _, c := range marker.Captions() {
		found := -1
		for i := r.Begin + 1; i < r.End; i++ {
			if !c.In(s.At(i).Text) {
				continue
			}
			if found >= 0 {
				return false, fragment.NewStructuralError("patch continuation captions", i, ErrDuplicateMarker,
					"%q already found at fragment %d", c, found)
			}
			found = i
		}
		if found < 0 {
			continue
		}
		text, ok := patched[found]
		if !ok {
			text = s.At(found).Text
		}
		patched[found] = c.Renumber(text)
	}

	for i, text := range patched {
		if err := s.Replace(i, text); err != nil {
			return false, err
		}
	}
	return len(patched) > 0, nil
}

// WrapWithCounterAdjustment brackets region r with fragments that step the
// figure counter up by one before the table and back down after it. The
// stream grows by exactly two fragments.
func WrapWithCounterAdjustment(s *fragment.Stream, r region.Region) error {
	if err := s.Check(r.Snapshot()); err != nil {
		return fmt.Errorf("counter adjustment for %s: %w", r, err)
	}

	before, err := s.Slice(0, r.Begin)
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

	frags := make([]fragment.Fragment, 0, s.Len()+2)
	frags = append(frags, before...)
	frags = append(frags, fragment.Fragment{Text: marker.FigureCounterUp})
	frags = append(frags, table...)
	frags = append(frags, fragment.Fragment{Text: marker.FigureCounterDown})
	frags = append(frags, after...)
	s.Assign(frags)
	return nil
}
