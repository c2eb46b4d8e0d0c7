package texbody

import "log/slog"

// RenderOptions holds configuration for a render.
type RenderOptions struct {
	// Character encoding of the input file ("" for UTF-8)
	encoding string

	// Directive warnings fail the render
	strict bool

	// Passes to skip
	skipFigures bool
	skipRules   bool

	logger *slog.Logger
}

// defaultOptions returns the default render options.
func defaultOptions() RenderOptions {
	return RenderOptions{
		encoding:    "",
		strict:      false,
		skipFigures: false,
		skipRules:   false,
		logger:      nil,
	}
}

// clone creates a copy of RenderOptions. The logger is shared.
func (o RenderOptions) clone() RenderOptions {
	return RenderOptions{
		encoding:    o.encoding,
		strict:      o.strict,
		skipFigures: o.skipFigures,
		skipRules:   o.skipRules,
		logger:      o.logger,
	}
}
