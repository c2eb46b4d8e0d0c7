// Package directive turns the options of the tabularrows directive into a
// rule suppression pass over the most recent table of a stream.
//
// The directive is written before the table it configures:
//
//	.. tabularrows::
//	   :hline-hide: -1 1:2 4
//
// and fires once the table has been rendered. Exactly one of hline-show and
// hline-hide may be given.
package directive

import (
	"errors"
	"fmt"

	"github.com/tsawler/texbody/fragment"
	"github.com/tsawler/texbody/region"
	"github.com/tsawler/texbody/rules"
	"github.com/tsawler/texbody/selector"
)

// ErrConflictingOptions is returned when both hline-show and hline-hide are
// set on one directive.
var ErrConflictingOptions = errors.New("tabularrows: hline-show and hline-hide are mutually exclusive")

// TabularRows holds the raw directive options.
type TabularRows struct {
	HlineShow string `yaml:"hline-show,omitempty"`
	HlineHide string `yaml:"hline-hide,omitempty"`
}

// Rule is a compiled tabularrows directive.
type Rule struct {
	Mode     rules.Mode
	Selector selector.Selector
}

// Compile validates the options. With neither option set the directive is
// a no-op and Compile returns nil, nil.
func (o TabularRows) Compile() (*Rule, error) {
	switch {
	case o.HlineShow != "" && o.HlineHide != "":
		return nil, ErrConflictingOptions
	case o.HlineHide != "":
		return compile(rules.Hide, o.HlineHide)
	case o.HlineShow != "":
		return compile(rules.Show, o.HlineShow)
	default:
		return nil, nil
	}
}

func compile(mode rules.Mode, expr string) (*Rule, error) {
	sel, err := selector.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("tabularrows hline-%s: %w", mode, err)
	}
	return &Rule{Mode: mode, Selector: sel}, nil
}

// Outcome reports what Apply did.
type Outcome struct {
	Region  region.Region
	Groups  int
	Blanked []int
}

// Apply locates the rules of the last table in s and blanks the ones the
// directive selects. Structural errors from the scan are returned as is.
func (r *Rule) Apply(s *fragment.Stream) (Outcome, error) {
	reg, err := region.FindTable(s)
	if err != nil {
		return Outcome{}, err
	}
	groups, err := rules.Locate(s, reg)
	if err != nil {
		return Outcome{}, err
	}
	indices := r.Selector.Resolve(len(groups))
	if err := rules.Apply(s, groups, indices, r.Mode); err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Region:  reg,
		Groups:  len(groups),
		Blanked: rules.Targets(indices, len(groups), r.Mode),
	}, nil
}

func (r *Rule) String() string {
	return fmt.Sprintf("hline-%s: %s", r.Mode, r.Selector)
}
