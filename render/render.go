package render

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tsawler/texbody/directive"
	"github.com/tsawler/texbody/figure"
	"github.com/tsawler/texbody/fragment"
	"github.com/tsawler/texbody/selector"
)

// Warning codes.
const (
	CodeMalformedSelector  = "malformed-selector"
	CodeConflictingOptions = "conflicting-options"
)

// Warning is a non-fatal problem found while rendering. The affected
// directive was skipped; the rest of the body rendered normally.
type Warning struct {
	Step    int
	Line    int
	Code    string
	Message string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("step %d (line %d): %s: %s", w.Step, w.Line, w.Code, w.Message)
	}
	return fmt.Sprintf("step %d: %s: %s", w.Step, w.Code, w.Message)
}

// FormatWarnings joins warnings into one line each.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// ErrStrict is returned in strict mode when a directive would otherwise
// have been skipped with a warning.
var ErrStrict = errors.New("directive rejected in strict mode")

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithStrict makes directive warnings fail the render.
func WithStrict(strict bool) Option {
	return func(r *Renderer) { r.strict = strict }
}

// Renderer replays traces. It holds no per-render state and may be reused;
// each Run builds its own stream.
type Renderer struct {
	logger *slog.Logger
	strict bool
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run replays t into a new stream and returns it.
func (r *Renderer) Run(t Trace) (*fragment.Stream, []Warning, error) {
	s := &fragment.Stream{}
	warnings, err := r.RunInto(s, t)
	if err != nil {
		return nil, warnings, err
	}
	return s, warnings, nil
}

// RunInto replays t onto the end of s.
func (r *Renderer) RunInto(s *fragment.Stream, t Trace) ([]Warning, error) {
	var warnings []Warning
	wrapper := figure.NewWrapper(r.logger)

	for n, step := range t.Steps {
		logger := r.logger.With("step", n, "line", step.Line)
		kind, err := step.Kind()
		if err != nil {
			return warnings, err
		}

		switch kind {
		case StepEmit:
			s.Append(step.Fragments()...)

		case StepGridFigure:
			res, err := wrapper.Wrap(s)
			if err != nil {
				return warnings, fmt.Errorf("step %d (line %d): gridfigure: %w", n, step.Line, err)
			}
			logger.Debug("gridfigure applied",
				"region", res.Region.String(), "relocated", res.Relocated, "patched", res.Patched)

		case StepTabularRows:
			w, err := r.tabularRows(s, *step.TabularRows, logger)
			if err != nil {
				return warnings, fmt.Errorf("step %d (line %d): tabularrows: %w", n, step.Line, err)
			}
			if w != nil {
				w.Step, w.Line = n, step.Line
				if r.strict {
					return append(warnings, *w), fmt.Errorf("step %d (line %d): %s: %w", n, step.Line, w.Message, ErrStrict)
				}
				logger.Warn("tabularrows skipped", "code", w.Code, "reason", w.Message)
				warnings = append(warnings, *w)
			}
		}
	}
	return warnings, nil
}

// tabularRows runs one directive. User input problems come back as a
// warning; structural problems as an error.
func (r *Renderer) tabularRows(s *fragment.Stream, opts directive.TabularRows, logger *slog.Logger) (*Warning, error) {
	rule, err := opts.Compile()
	switch {
	case errors.Is(err, directive.ErrConflictingOptions):
		return &Warning{Code: CodeConflictingOptions, Message: err.Error()}, nil
	case errors.Is(err, selector.ErrMalformed):
		return &Warning{Code: CodeMalformedSelector, Message: err.Error()}, nil
	case err != nil:
		return nil, err
	case rule == nil:
		logger.Debug("tabularrows without options")
		return nil, nil
	}

	out, err := rule.Apply(s)
	if err != nil {
		return nil, err
	}
	logger.Debug("tabularrows applied",
		"directive", rule.String(), "region", out.Region.String(), "groups", out.Groups, "blanked", out.Blanked)
	return nil, nil
}
