package rules

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tsawler/texbody/fragment"
	"github.com/tsawler/texbody/marker"
	"github.com/tsawler/texbody/region"
)

var (
	// ErrMissingBoilerplate is returned when a longtable lacks one of its
	// section terminators or has them out of order.
	ErrMissingBoilerplate = errors.New("missing longtable boilerplate")

	// ErrBoilerplateMismatch is returned when the rules repeated by the
	// continuation head or foot do not line up with the rules they repeat.
	ErrBoilerplateMismatch = errors.New("longtable boilerplate does not repeat table rules")
)

// Group is one logical horizontal rule: the ascending indices of every
// fragment that renders it.
type Group struct {
	Indices []int

	snap fragment.Snapshot
}

// Snapshot returns the stream version the group was computed against.
func (g Group) Snapshot() fragment.Snapshot {
	return g.snap
}

// longtable sections in stream order. Each one is closed by the
// terminator returned by terminator.
const (
	secFirstHead = iota
	secContinuationHead
	secContinuationFoot
	secLastFoot
	secBody
)

func terminator(section int) marker.Boilerplate {
	switch section {
	case secFirstHead:
		return marker.FirstHead
	case secContinuationHead:
		return marker.ContinuationHead
	case secContinuationFoot:
		return marker.ContinuationFoot
	case secLastFoot:
		return marker.LastFoot
	default:
		return marker.NoBoilerplate
	}
}

// Locate returns the logical rules of region r, earliest first.
//
// In Plain and Flexible regions every rule fragment is its own group. In a
// Paginated region the rules of the continuation head pair up one to one
// with the rules of the first head, and a rule in the continuation foot
// pairs with the last logical rule. A longtable whose boilerplate is
// missing, or whose repeated sections do not hold matching rules, is a
// *fragment.StructuralError.
func Locate(s *fragment.Stream, r region.Region) ([]Group, error) {
	if err := s.Check(r.Snapshot()); err != nil {
		return nil, fmt.Errorf("locate rules in %s: %w", r, err)
	}
	snap := s.Snapshot()

	if r.Kind != marker.Paginated {
		var groups []Group
		for i := r.Begin + 1; i < r.End; i++ {
			if marker.IsRule(s.At(i).Text) {
				groups = append(groups, Group{Indices: []int{i}, snap: snap})
			}
		}
		return groups, nil
	}

	const op = "locate longtable rules"
	var (
		sections    [secBody + 1][]int
		terminators [secBody]int
		current     = secBody
	)
	for i := r.End - 1; i > r.Begin; i-- {
		text := s.At(i).Text
		if b := marker.BoilerplateOf(text); b != marker.NoBoilerplate {
			if current == secFirstHead || terminator(current-1) != b {
				return nil, fragment.NewStructuralError(op, i, ErrMissingBoilerplate,
					"unexpected %s in %s", b, r)
			}
			current--
			terminators[current] = i
			continue
		}
		if marker.IsRule(text) {
			sections[current] = append(sections[current], i)
		}
	}
	if current != secFirstHead {
		return nil, fragment.NewStructuralError(op, r.Begin, ErrMissingBoilerplate,
			"%s has no %s", r, terminator(current-1))
	}
	for k := range sections {
		sort.Ints(sections[k])
	}

	head, cont := sections[secFirstHead], sections[secContinuationHead]
	if len(head) == 0 || len(cont) != len(head) {
		return nil, fragment.NewStructuralError(op, terminators[secContinuationHead], ErrBoilerplateMismatch,
			"first head has %d rules, continuation head has %d", len(head), len(cont))
	}
	foot := sections[secContinuationFoot]
	if len(foot) > 1 {
		return nil, fragment.NewStructuralError(op, foot[1], ErrBoilerplateMismatch,
			"continuation foot has %d rules, expected at most one", len(foot))
	}
	if len(foot) == 1 && len(sections[secBody])+len(sections[secLastFoot]) == 0 {
		return nil, fragment.NewStructuralError(op, foot[0], ErrBoilerplateMismatch,
			"continuation foot repeats a rule but %s has no body rule", r)
	}

	groups := make([]Group, 0, len(head)+len(sections[secBody])+len(sections[secLastFoot]))
	for k := range head {
		groups = append(groups, Group{Indices: []int{head[k], cont[k]}, snap: snap})
	}
	for _, i := range sections[secBody] {
		groups = append(groups, Group{Indices: []int{i}, snap: snap})
	}
	for _, i := range sections[secLastFoot] {
		groups = append(groups, Group{Indices: []int{i}, snap: snap})
	}
	if len(foot) == 1 {
		last := &groups[len(groups)-1]
		last.Indices = append(last.Indices, foot[0])
		sort.Ints(last.Indices)
	}
	return groups, nil
}
