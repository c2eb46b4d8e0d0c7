package texbody

import (
	"fmt"
	"log/slog"

	"github.com/tsawler/texbody/fragment"
	"github.com/tsawler/texbody/render"
)

// Processor provides a fluent interface for post-processing a rendered
// body. Each configuration method returns a new Processor, so a configured
// Processor can be shared and extended safely.
type Processor struct {
	// Source: a file to load, or a parsed trace
	filename string
	trace    *render.Trace

	// Existing body to append to; nil means a fresh one
	stream *fragment.Stream

	// Configuration
	options RenderOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Processor with a copy of options.
func (p *Processor) clone() *Processor {
	return &Processor{
		filename: p.filename,
		trace:    p.trace,
		stream:   p.stream,
		options:  p.options.clone(),
		err:      p.err,
	}
}

// ============================================================================
// Configuration Methods (return new Processor instance)
// ============================================================================

// Encoding sets the character encoding of the input file, e.g. "latin1".
// It has no effect on a Processor created from a trace.
//
// Example:
//
//	out, _, err := texbody.Open("old.tex").Encoding("iso-8859-1").Render()
func (p *Processor) Encoding(name string) *Processor {
	newP := p.clone()
	newP.options.encoding = name
	return newP
}

// Strict makes directives with malformed or conflicting options fail the
// render instead of being skipped with a warning.
//
// Example:
//
//	out, _, err := texbody.Open("body.tex").Strict().Render()
func (p *Processor) Strict() *Processor {
	newP := p.clone()
	newP.options.strict = true
	return newP
}

// SkipFigures ignores gridfigure events. Tables stay where the renderer put
// them.
func (p *Processor) SkipFigures() *Processor {
	newP := p.clone()
	newP.options.skipFigures = true
	return newP
}

// SkipRules ignores tabularrows events. Every rule is kept.
func (p *Processor) SkipRules() *Processor {
	newP := p.clone()
	newP.options.skipRules = true
	return newP
}

// Logger sets the logger the passes report to. By default nothing is
// logged.
func (p *Processor) Logger(l *slog.Logger) *Processor {
	newP := p.clone()
	newP.options.logger = l
	return newP
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Trace loads the input and returns the trace that will be replayed, with
// skipped events removed.
func (p *Processor) Trace() (render.Trace, error) {
	if p.err != nil {
		return render.Trace{}, p.err
	}

	var t render.Trace
	if p.trace != nil {
		t = *p.trace
	} else {
		if p.filename == "" {
			return render.Trace{}, fmt.Errorf("no filename specified")
		}
		loaded, _, err := render.LoadFile(p.filename, p.options.encoding)
		if err != nil {
			return render.Trace{}, err
		}
		t = loaded
	}
	return p.filter(t), nil
}

func (p *Processor) filter(t render.Trace) render.Trace {
	if !p.options.skipFigures && !p.options.skipRules {
		return t
	}
	out := render.Trace{Steps: make([]render.Step, 0, len(t.Steps))}
	for _, step := range t.Steps {
		if p.options.skipFigures && step.GridFigure {
			continue
		}
		if p.options.skipRules && step.TabularRows != nil {
			continue
		}
		out.Steps = append(out.Steps, step)
	}
	return out
}

func (p *Processor) renderer() *render.Renderer {
	return render.New(
		render.WithLogger(p.options.logger),
		render.WithStrict(p.options.strict),
	)
}

// Stream replays the input and returns the processed body.
//
// Structural problems (tables the passes cannot delimit, duplicated
// continuation captions, longtable boilerplate that does not repeat the
// table's rules) abort with an error wrapping a *fragment.StructuralError.
func (p *Processor) Stream() (*fragment.Stream, []Warning, error) {
	t, err := p.Trace()
	if err != nil {
		return nil, nil, err
	}
	if p.stream == nil {
		return p.renderer().Run(t)
	}
	warnings, err := p.renderer().RunInto(p.stream, t)
	if err != nil {
		return nil, warnings, err
	}
	return p.stream, warnings, nil
}

// Render replays the input and returns the processed body as text.
//
// Example:
//
//	out, warnings, err := texbody.Open("body.tex").Render()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", texbody.FormatWarnings(warnings))
//	}
func (p *Processor) Render() (string, []Warning, error) {
	s, warnings, err := p.Stream()
	if err != nil {
		return "", warnings, err
	}
	return s.String(), warnings, nil
}

// Tables lists the tables of the unprocessed input with the fragment
// indices of their logical rules, in the order tabularrows counts them.
func (p *Processor) Tables() ([]render.TableInfo, error) {
	t, err := p.Trace()
	if err != nil {
		return nil, err
	}
	return p.renderer().Inspect(t)
}
