package rules

import (
	"fmt"

	"github.com/tsawler/texbody/fragment"
)

// Mode tells Apply how to read the selected indices.
type Mode int

const (
	// Hide blanks the selected groups.
	Hide Mode = iota
	// Show blanks every group that is not selected.
	Show
)

// String returns the directive option suffix for the mode.
func (m Mode) String() string {
	switch m {
	case Hide:
		return "hide"
	case Show:
		return "show"
	default:
		return "unknown"
	}
}

// Targets returns the group ordinals Apply blanks for the given selection
// over n groups, ascending. Indices outside [0, n) are ignored.
func Targets(indices []int, n int, mode Mode) []int {
	selected := make([]bool, n)
	for _, i := range indices {
		if i >= 0 && i < n {
			selected[i] = true
		}
	}
	want := mode == Hide
	var out []int
	for i, sel := range selected {
		if sel == want {
			out = append(out, i)
		}
	}
	return out
}

// Apply blanks every fragment of the groups chosen by indices and mode.
// Blanked fragments keep their position, so the stream length does not
// change. Groups computed before the last mutation of s are rejected with
// fragment.ErrStale, and indices must lie in [0, len(groups)).
func Apply(s *fragment.Stream, groups []Group, indices []int, mode Mode) error {
	for k, g := range groups {
		if err := s.Check(g.snap); err != nil {
			return fmt.Errorf("rule group %d: %w", k, err)
		}
	}
	for _, i := range indices {
		if i < 0 || i >= len(groups) {
			return fmt.Errorf("rule group %d of %d: %w", i, len(groups), fragment.ErrOutOfRange)
		}
	}
	if mode != Hide && mode != Show {
		return fmt.Errorf("unknown rule mode %d", int(mode))
	}

	for _, k := range Targets(indices, len(groups), mode) {
		for _, i := range groups[k].Indices {
			if err := s.Blank(i); err != nil {
				return fmt.Errorf("rule group %d: %w", k, err)
			}
		}
	}
	return nil
}
