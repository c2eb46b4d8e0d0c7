// Package marker centralizes the LaTeX literals the passes recognize in
// rendered fragments. Every literal lives in one of the tables below; the
// rest of the module matches fragments only through this package.
//
// The literals form an implicit contract with the renderer that produced
// the fragments. If the renderer changes its table boilerplate, this is the
// only file to update.
package marker

import (
	"regexp"
	"strings"
)

// Kind is a table-like environment the passes know how to delimit.
type Kind int

const (
	// Unknown is not a table environment.
	Unknown Kind = iota
	// Plain is the fixed-width tabular environment.
	Plain
	// Flexible is the tabulary environment with auto-sized columns.
	Flexible
	// Paginated is the longtable environment, which can break across pages
	// and carries continuation boilerplate.
	Paginated
)

type environment struct {
	kind  Kind
	name  string
	begin string
	end   string
}

var environments = []environment{
	{Plain, "tabular", `\begin{tabular}`, `\end{tabular}`},
	{Flexible, "tabulary", `\begin{tabulary}`, `\end{tabulary}`},
	{Paginated, "longtable", `\begin{longtable}`, `\end{longtable}`},
}

// Kinds returns every table environment kind.
func Kinds() []Kind {
	return []Kind{Plain, Flexible, Paginated}
}

func lookup(k Kind) (environment, bool) {
	for _, e := range environments {
		if e.kind == k {
			return e, true
		}
	}
	return environment{}, false
}

// String returns the LaTeX environment name.
func (k Kind) String() string {
	if e, ok := lookup(k); ok {
		return e.name
	}
	return "unknown"
}

// Begin returns the literal opening the environment.
func (k Kind) Begin() string {
	e, _ := lookup(k)
	return e.begin
}

// End returns the literal closing the environment.
func (k Kind) End() string {
	e, _ := lookup(k)
	return e.end
}

// MatchesBegin reports whether text opens an environment of kind k. The
// literal may be followed by a column spec or placement argument, so
// "\begin{tabular}{ll}" matches Plain but "\begin{tabulary}" does not.
func (k Kind) MatchesBegin(text string) bool {
	e, ok := lookup(k)
	if !ok {
		return false
	}
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, e.begin) {
		return false
	}
	rest := t[len(e.begin):]
	return rest == "" || rest[0] == '{' || rest[0] == '['
}

// MatchesEnd reports whether text closes an environment of kind k.
func (k Kind) MatchesEnd(text string) bool {
	e, ok := lookup(k)
	return ok && strings.TrimSpace(text) == e.end
}

// BeginKind returns the kind whose Begin literal text matches, or Unknown.
func BeginKind(text string) Kind {
	for _, e := range environments {
		if e.kind.MatchesBegin(text) {
			return e.kind
		}
	}
	return Unknown
}

// EndKind returns the kind whose End literal text matches, or Unknown.
func EndKind(text string) Kind {
	for _, e := range environments {
		if e.kind.MatchesEnd(text) {
			return e.kind
		}
	}
	return Unknown
}

// Boilerplate is one of the section terminators a longtable carries.
type Boilerplate int

const (
	// NoBoilerplate matches nothing.
	NoBoilerplate Boilerplate = iota
	// FirstHead ends the head printed on the first page.
	FirstHead
	// ContinuationHead ends the head repeated on every following page.
	ContinuationHead
	// ContinuationFoot ends the foot printed before every page break.
	ContinuationFoot
	// LastFoot ends the foot printed after the last row.
	LastFoot
)

var boilerplates = []struct {
	b       Boilerplate
	literal string
}{
	{FirstHead, `\endfirsthead`},
	{ContinuationHead, `\endhead`},
	{ContinuationFoot, `\endfoot`},
	{LastFoot, `\endlastfoot`},
}

// Literal returns the LaTeX command for b.
func (b Boilerplate) Literal() string {
	for _, e := range boilerplates {
		if e.b == b {
			return e.literal
		}
	}
	return ""
}

func (b Boilerplate) String() string {
	if l := b.Literal(); l != "" {
		return l
	}
	return "none"
}

// BoilerplateOf returns the boilerplate terminator text equals, or
// NoBoilerplate.
func BoilerplateOf(text string) Boilerplate {
	t := strings.TrimSpace(text)
	for _, e := range boilerplates {
		if t == e.literal {
			return e.b
		}
	}
	return NoBoilerplate
}

const (
	// FigureBegin opens the captioned, numbered figure wrapper.
	FigureBegin = `\begin{figure}`

	// Hline is the bare horizontal rule.
	Hline = `\hline`

	// Spacing closes the gap left between a relocated table and the figure
	// that now follows it.
	Spacing = "\n\\vspace{-\\textfloatsep}\n"

	// FigureCounterUp and FigureCounterDown bracket a relocated table so its
	// continuation captions show the number the figure will receive.
	FigureCounterUp   = "\n\n\\addtocounter{figure}{1}\n\n"
	FigureCounterDown = "\n\n\\addtocounter{figure}{-1}\n\n"

	// TableCounterRef is the table counter reference inside continuation
	// captions; FigureCounterRef replaces it.
	TableCounterRef  = `\tablename\ \thetable{}`
	FigureCounterRef = `\figurename\ \thefigure{}`
)

var clineRule = regexp.MustCompile(`^\\cline\{\d+-\d+\}$`)

// IsFigureBegin reports whether text opens a figure wrapper.
func IsFigureBegin(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), FigureBegin)
}

// IsRule reports whether text is a whole horizontal rule: a bare \hline or
// a multi-column \cline{a-b}.
func IsRule(text string) bool {
	t := strings.TrimSpace(text)
	return t == Hline || clineRule.MatchString(t)
}

// Caption is a page-continuation caption a longtable renders in its
// continuation head or foot.
type Caption int

const (
	// ContinuedFromPrevious heads every page after the first.
	ContinuedFromPrevious Caption = iota
	// ContinuedOnNext foots every page before the last.
	ContinuedOnNext
)

var captions = []struct {
	c       Caption
	literal string
}{
	{ContinuedFromPrevious, `\tablecontinued{` + TableCounterRef + ` -- continued from previous page}`},
	{ContinuedOnNext, `\tablecontinued{` + TableCounterRef + ` -- continued on next page}`},
}

// Captions returns every continuation caption.
func Captions() []Caption {
	return []Caption{ContinuedFromPrevious, ContinuedOnNext}
}

// Literal returns the caption text as the renderer emits it.
func (c Caption) Literal() string {
	for _, e := range captions {
		if e.c == c {
			return e.literal
		}
	}
	return ""
}

func (c Caption) String() string {
	switch c {
	case ContinuedFromPrevious:
		return "continued from previous page"
	case ContinuedOnNext:
		return "continued on next page"
	default:
		return "unknown"
	}
}

// In reports whether text contains the caption.
func (c Caption) In(text string) bool {
	l := c.Literal()
	return l != "" && strings.Contains(text, l)
}

// Renumber rewrites the caption inside text to reference the figure
// counter. Text outside the caption is left untouched.
func (c Caption) Renumber(text string) string {
	l := c.Literal()
	if l == "" {
		return text
	}
	return strings.Replace(text, l, strings.Replace(l, TableCounterRef, FigureCounterRef, 1), 1)
}
