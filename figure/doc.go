// Package figure makes a paginated table render as the numbered figure
// that wraps it.
//
// A longtable placed inside a figure float cannot break across pages, so
// the renderer's output is rewritten after the fact: the table is moved in
// front of its \begin{figure} prefix, the figure is pulled up by
// [marker.Spacing] so its caption reads as the table's caption, and the
// table's "continued" captions are renumbered to the figure counter.
//
// The figure has not been numbered when the table is emitted, so a
// renumbered table is bracketed by fragments that step the figure counter
// up and back down. The references inside the table then show the number
// the figure receives right after it.
//
// Every step works on an explicit [region.Region]. Steps that mutate the
// stream invalidate earlier regions; [Wrapper.Wrap] rescans between steps.
package figure
