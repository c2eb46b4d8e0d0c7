package figure

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tsawler/texbody/fragment"
	"github.com/tsawler/texbody/region"
)

// Result describes what Wrap did to the stream.
type Result struct {
	// Relocated is true when a figure prefix was found and the table moved
	// in front of it.
	Relocated bool
	// Patched is true when continuation captions were renumbered and the
	// table bracketed with counter adjustments.
	Patched bool
	// Region is the table region in the stream as left by Wrap.
	Region region.Region
}

// Wrapper runs the figure pass over the most recent table of a stream.
type Wrapper struct {
	logger *slog.Logger
}

// NewWrapper creates a Wrapper. A nil logger discards log output.
func NewWrapper(logger *slog.Logger) *Wrapper {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Wrapper{logger: logger}
}

// Wrap is called right after a table and the figure wrapping it have been
// appended to s. It locates the table, renumbers its continuation captions,
// moves it in front of the figure prefix and, if captions were renumbered,
// brackets it with figure counter adjustments.
//
// A table with no enclosing figure is left untouched.
func (w *Wrapper) Wrap(s *fragment.Stream) (Result, error) {
	r, err := region.FindTable(s)
	if err != nil {
		return Result{}, err
	}
	p, ok, err := region.FindFigurePrefixFor(s, r)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		w.logger.Debug("table has no enclosing figure", "region", r.String())
		return Result{Region: r}, nil
	}

	patched, err := PatchContinuationMarkers(s, r)
	if err != nil {
		return Result{}, err
	}
	if patched {
		// Renumbering bumped the stream version. Indices did not move.
		if r, err = region.At(s, r.Kind, r.Begin, r.End); err != nil {
			return Result{}, err
		}
		if p, ok, err = region.FindFigurePrefixFor(s, r); err != nil {
			return Result{}, err
		}
		if !ok {
			return Result{}, fmt.Errorf("figure prefix of %s lost after patching", r)
		}
	}

	if err := Relocate(s, r, &p); err != nil {
		return Result{}, err
	}
	// The figure prefix may hold other tables, now after this one.
	if r, err = region.At(s, r.Kind, p.Start, p.Start+r.Len()-1); err != nil {
		return Result{}, err
	}
	w.logger.Debug("table relocated before figure",
		"region", r.String(), "figure_start", p.Start, "patched", patched)

	if !patched {
		return Result{Relocated: true, Region: r}, nil
	}
	if err := WrapWithCounterAdjustment(s, r); err != nil {
		return Result{}, err
	}
	if r, err = region.At(s, r.Kind, r.Begin+1, r.End+1); err != nil {
		return Result{}, err
	}
	return Result{Relocated: true, Patched: true, Region: r}, nil
}
