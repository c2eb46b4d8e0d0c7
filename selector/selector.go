// Package selector parses and evaluates slice-style index selectors such as
// "-1 1:3 ::2" against a domain of known size.
//
// A selector is a list of chunks separated by commas, semicolons or
// whitespace. Each chunk is either a single index or a slice:
//
//	3       the fourth element
//	-1      the last element
//	1:3     elements 1 and 2
//	2:      from element 2 to the end
//	:2      the first two elements
//	::2     every other element
//	::-1    every element (order is irrelevant, results are sets)
//
// Indices are zero-based and follow Python slicing: negative values count
// from the end and slice bounds are clamped to the domain. A single index
// outside the domain selects nothing; callers rarely know the domain size
// in advance, so this is not an error.
package selector

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrMalformed is the sentinel wrapped by every MalformedError.
var ErrMalformed = errors.New("malformed selector")

// MalformedError names the chunk of an expression that failed to parse.
type MalformedError struct {
	Expr   string
	Chunk  string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed selector chunk %q in %q: %s", e.Chunk, e.Expr, e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}

var (
	colonSpace = regexp.MustCompile(`\s*:\s*`)
	separators = regexp.MustCompile(`[,;\s]+`)
)

// bound is an optional slice bound.
type bound struct {
	set bool
	v   int
}

type chunk struct {
	text  string
	slice bool
	index int
	start bound
	stop  bound
	step  bound
}

// Selector is a parsed index expression.
type Selector struct {
	chunks []chunk
}

// Parse parses expr. An empty or blank expression selects nothing.
func Parse(expr string) (Selector, error) {
	normalized := colonSpace.ReplaceAllString(strings.TrimSpace(expr), ":")
	var sel Selector
	for _, text := range separators.Split(normalized, -1) {
		if text == "" {
			continue
		}
		c, err := parseChunk(text)
		if err != nil {
			return Selector{}, &MalformedError{Expr: expr, Chunk: text, Reason: err.Error()}
		}
		sel.chunks = append(sel.chunks, c)
	}
	return sel, nil
}

// MustParse is like Parse but panics on a malformed expression.
func MustParse(expr string) Selector {
	sel, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return sel
}

func parseChunk(text string) (chunk, error) {
	parts := strings.Split(text, ":")
	if len(parts) > 3 {
		return chunk{}, errors.New("too many colons")
	}
	if len(parts) == 1 {
		v, err := parseInt(parts[0])
		if err != nil {
			return chunk{}, err
		}
		return chunk{text: text, index: v}, nil
	}

	c := chunk{text: text, slice: true}
	bounds := []*bound{&c.start, &c.stop, &c.step}
	for i, p := range parts {
		if p == "" {
			continue
		}
		v, err := parseInt(p)
		if err != nil {
			return chunk{}, err
		}
		*bounds[i] = bound{set: true, v: v}
	}
	if c.step.set && c.step.v == 0 {
		return chunk{}, errors.New("slice step cannot be zero")
	}
	return c, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return v, nil
}

// Len returns the number of chunks.
func (s Selector) Len() int {
	return len(s.chunks)
}

// Empty reports whether the selector has no chunks.
func (s Selector) Empty() bool {
	return len(s.chunks) == 0
}

// String returns the chunks joined by single spaces.
func (s Selector) String() string {
	texts := make([]string, len(s.chunks))
	for i, c := range s.chunks {
		texts[i] = c.text
	}
	return strings.Join(texts, " ")
}

// Resolve evaluates the selector against the domain [0, n) and returns the
// union of every chunk's indices, sorted ascending without duplicates.
func (s Selector) Resolve(n int) []int {
	if n <= 0 {
		return nil
	}
	seen := make(map[int]struct{})
	for _, c := range s.chunks {
		for _, i := range c.indices(n) {
			seen[i] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Resolve parses expr and evaluates it against [0, n).
func Resolve(expr string, n int) ([]int, error) {
	sel, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return sel.Resolve(n), nil
}

func (c chunk) indices(n int) []int {
	if !c.slice {
		i := c.index
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return nil
		}
		return []int{i}
	}

	step := 1
	if c.step.set {
		step = c.step.v
	}

	var out []int
	if step > 0 {
		start := clamp(c.start, 0, n, 0, n)
		stop := clamp(c.stop, n, n, 0, n)
		for i := start; i < stop; i += step {
			out = append(out, i)
			if step >= stop-i {
				break
			}
		}
		return out
	}

	start := clamp(c.start, n-1, n, -1, n-1)
	stop := clamp(c.stop, -1, n, -1, n-1)
	for i := start; i > stop; i += step {
		out = append(out, i)
	}
	return out
}

// clamp resolves an optional slice bound: def when unset, negative values
// counted from n, then limited to [lo, hi].
func clamp(b bound, def, n, lo, hi int) int {
	if !b.set {
		return def
	}
	v := b.v
	if v < 0 {
		v += n
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
