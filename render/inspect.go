package render

import (
	"github.com/tsawler/texbody/fragment"
	"github.com/tsawler/texbody/marker"
	"github.com/tsawler/texbody/region"
	"github.com/tsawler/texbody/rules"
)

// TableInfo describes one table found while inspecting a trace.
type TableInfo struct {
	Kind   marker.Kind
	Begin  int
	End    int
	Figure bool
	// Rules holds the fragment indices of each logical rule, in the order
	// tabularrows selectors count them.
	Rules [][]int
}

// Inspect replays the emit steps of t without running any pass and
// reports every table as soon as its end literal is emitted. Fragment
// indices refer to the unprocessed body.
func (r *Renderer) Inspect(t Trace) ([]TableInfo, error) {
	s := &fragment.Stream{}
	var tables []TableInfo
	for _, step := range t.Steps {
		kind, err := step.Kind()
		if err != nil {
			return nil, err
		}
		if kind != StepEmit {
			continue
		}
		for _, text := range step.Fragments() {
			s.Append(text)
			if marker.EndKind(text) == marker.Unknown {
				continue
			}
			info, err := describe(s)
			if err != nil {
				return tables, err
			}
			r.logger.Debug("table found", "kind", info.Kind.String(), "begin", info.Begin, "rules", len(info.Rules))
			tables = append(tables, info)
		}
	}
	return tables, nil
}

func describe(s *fragment.Stream) (TableInfo, error) {
	reg, err := region.FindTable(s)
	if err != nil {
		return TableInfo{}, err
	}
	groups, err := rules.Locate(s, reg)
	if err != nil {
		return TableInfo{}, err
	}
	_, inFigure, err := region.FindFigurePrefixFor(s, reg)
	if err != nil {
		return TableInfo{}, err
	}

	info := TableInfo{Kind: reg.Kind, Begin: reg.Begin, End: reg.End, Figure: inFigure}
	for _, g := range groups {
		info.Rules = append(info.Rules, append([]int(nil), g.Indices...))
	}
	return info, nil
}
