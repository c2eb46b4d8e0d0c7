// Package texbody post-processes rendered LaTeX document bodies so that
// paginated tables can stand in for numbered figures, and so that chosen
// horizontal rules of a table can be suppressed.
//
// Basic usage:
//
//	out, warnings, err := texbody.Open("body.tex").Render()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", texbody.FormatWarnings(warnings))
//	}
//
// With options:
//
//	out, _, err := texbody.Open("body.tex").
//	    Encoding("latin1").
//	    Strict().
//	    Render()
//
// The lower-level packages (region, figure, rules, selector) operate on a
// fragment.Stream directly and can be driven by any renderer.
package texbody

import (
	"github.com/tsawler/texbody/fragment"
	"github.com/tsawler/texbody/render"
)

// Warning is a non-fatal problem found while rendering: a directive that
// was skipped because of its options.
type Warning = render.Warning

// FormatWarnings joins warnings, one per line.
func FormatWarnings(warnings []Warning) string {
	return render.FormatWarnings(warnings)
}

// Open returns a Processor reading the body or trace at filename. The
// format is detected from the extension, then from the content.
//
// Example:
//
//	out, warnings, err := texbody.Open("body.tex").Render()
func Open(filename string) *Processor {
	return &Processor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromTrace returns a Processor replaying an already-parsed trace.
//
// Example:
//
//	trace, _ := render.ParseTrace(data)
//	stream, warnings, err := texbody.FromTrace(trace).Stream()
func FromTrace(t render.Trace) *Processor {
	return &Processor{
		trace:   &t,
		options: defaultOptions(),
	}
}

// FromStream returns a Processor that appends the trace's steps to an
// existing body instead of a fresh one. The caller keeps ownership of s
// and must not mutate it while the Processor runs.
func FromStream(s *fragment.Stream, t render.Trace) *Processor {
	return &Processor{
		stream:  s,
		trace:   &t,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil.
//
// Example:
//
//	tables := texbody.Must(texbody.Open("body.tex").Tables())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRender wraps a call to Render or Stream and panics if the error is
// non-nil. Warnings are discarded.
//
// Example:
//
//	out := texbody.MustRender(texbody.Open("body.tex").Render())
func MustRender[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
