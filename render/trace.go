package render

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/texbody/directive"
)

// ErrInvalidTrace is returned for traces that cannot be replayed.
var ErrInvalidTrace = errors.New("invalid render trace")

// StepKind identifies what a trace step does.
type StepKind int

const (
	// StepEmit appends fragments to the body.
	StepEmit StepKind = iota
	// StepGridFigure runs the figure pass on the table just emitted.
	StepGridFigure
	// StepTabularRows runs the rule suppression pass on the table just
	// emitted.
	StepTabularRows
)

func (k StepKind) String() string {
	switch k {
	case StepEmit:
		return "emit"
	case StepGridFigure:
		return "gridfigure"
	case StepTabularRows:
		return "tabularrows"
	default:
		return "unknown"
	}
}

// Step is one event of a render trace. Exactly one field is set.
type Step struct {
	Emit        *string                `yaml:"emit,omitempty"`
	EmitLines   []string               `yaml:"emit_lines,omitempty"`
	GridFigure  bool                   `yaml:"gridfigure,omitempty"`
	TabularRows *directive.TabularRows `yaml:"tabularrows,omitempty"`

	// Line is the source line of the step, for messages.
	Line int `yaml:"-"`
}

// Kind returns what the step does, or an error when the step sets no field
// or more than one.
func (s Step) Kind() (StepKind, error) {
	count := 0
	kind := StepEmit
	if s.Emit != nil {
		count++
	}
	if len(s.EmitLines) > 0 {
		count++
	}
	if s.GridFigure {
		count++
		kind = StepGridFigure
	}
	if s.TabularRows != nil {
		count++
		kind = StepTabularRows
	}
	if count != 1 {
		return 0, fmt.Errorf("%w: step at line %d must set exactly one of emit, emit_lines, gridfigure, tabularrows",
			ErrInvalidTrace, s.Line)
	}
	return kind, nil
}

// Fragments returns the texts an emit step appends.
func (s Step) Fragments() []string {
	if s.Emit != nil {
		return []string{*s.Emit}
	}
	return s.EmitLines
}

// Trace is an ordered list of steps replayed into a fresh body.
type Trace struct {
	Steps []Step `yaml:"steps"`
}

// Emit returns an emit step for text.
func Emit(text string) Step {
	return Step{Emit: &text}
}

// ParseTrace decodes a YAML trace. Unknown keys are rejected.
func ParseTrace(data []byte) (Trace, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Trace{}, fmt.Errorf("%w: %v", ErrInvalidTrace, err)
	}
	if len(root.Content) == 0 {
		return Trace{}, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return Trace{}, fmt.Errorf("%w: line %d: expected a mapping with a steps key", ErrInvalidTrace, doc.Line)
	}

	var trace Trace
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		if key.Value != "steps" {
			return Trace{}, fmt.Errorf("%w: line %d: unknown key %q", ErrInvalidTrace, key.Line, key.Value)
		}
		if value.Kind != yaml.SequenceNode {
			return Trace{}, fmt.Errorf("%w: line %d: steps must be a list", ErrInvalidTrace, value.Line)
		}
		for _, n := range value.Content {
			step, err := decodeStep(n)
			if err != nil {
				return Trace{}, err
			}
			trace.Steps = append(trace.Steps, step)
		}
	}
	return trace, nil
}

var (
	stepKeys        = map[string]bool{"emit": true, "emit_lines": true, "gridfigure": true, "tabularrows": true}
	tabularRowsKeys = map[string]bool{"hline-show": true, "hline-hide": true}
)

func checkKeys(n *yaml.Node, known map[string]bool, what string) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: %s must be a mapping", ErrInvalidTrace, n.Line, what)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if !known[key.Value] {
			return fmt.Errorf("%w: line %d: unknown %s key %q", ErrInvalidTrace, key.Line, what, key.Value)
		}
		if key.Value == "tabularrows" {
			if err := checkKeys(n.Content[i+1], tabularRowsKeys, "tabularrows"); err != nil {
				return err
			}
		}
	}
	return nil
}

func decodeStep(n *yaml.Node) (Step, error) {
	if err := checkKeys(n, stepKeys, "step"); err != nil {
		return Step{}, err
	}
	var step Step
	if err := n.Decode(&step); err != nil {
		return Step{}, fmt.Errorf("%w: step at line %d: %v", ErrInvalidTrace, n.Line, err)
	}
	step.Line = n.Line
	if _, err := step.Kind(); err != nil {
		return Step{}, err
	}
	return step, nil
}

// DirectivePrefix starts a comment line that carries a directive event in
// a LaTeX body.
const DirectivePrefix = "% texbody:"

// ParseBody splits a LaTeX body into one fragment per line, keeping line
// endings. Lines of the form
//
//	% texbody:gridfigure
//	% texbody:tabularrows hline-hide=-1 1:2
//
// become directive steps and are not emitted.
func ParseBody(text string) (Trace, error) {
	var trace Trace
	var pending []string
	pendingLine := 0
	flush := func() {
		if len(pending) > 0 {
			trace.Steps = append(trace.Steps, Step{EmitLines: pending, Line: pendingLine})
			pending = nil
		}
	}

	lines := strings.SplitAfter(text, "\n")
	for n, line := range lines {
		if line == "" {
			continue
		}
		lineNo := n + 1
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, DirectivePrefix) {
			if len(pending) == 0 {
				pendingLine = lineNo
			}
			pending = append(pending, line)
			continue
		}

		flush()
		step, err := parseDirectiveLine(strings.TrimPrefix(trimmed, DirectivePrefix))
		if err != nil {
			return Trace{}, fmt.Errorf("%w: line %d: %v", ErrInvalidTrace, lineNo, err)
		}
		step.Line = lineNo
		trace.Steps = append(trace.Steps, step)
	}
	flush()
	return trace, nil
}

func parseDirectiveLine(rest string) (Step, error) {
	name, args, _ := strings.Cut(strings.TrimSpace(rest), " ")
	args = strings.TrimSpace(args)

	switch name {
	case "gridfigure":
		if args != "" {
			return Step{}, fmt.Errorf("gridfigure takes no arguments, got %q", args)
		}
		return Step{GridFigure: true}, nil
	case "tabularrows":
		var opts directive.TabularRows
		if args != "" {
			key, value, ok := strings.Cut(args, "=")
			if !ok {
				return Step{}, fmt.Errorf("tabularrows option %q is not key=value", args)
			}
			switch strings.TrimSpace(key) {
			case "hline-hide":
				opts.HlineHide = strings.TrimSpace(value)
			case "hline-show":
				opts.HlineShow = strings.TrimSpace(value)
			default:
				return Step{}, fmt.Errorf("unknown tabularrows option %q", key)
			}
		}
		return Step{TabularRows: &opts}, nil
	default:
		return Step{}, fmt.Errorf("unknown directive %q", name)
	}
}
