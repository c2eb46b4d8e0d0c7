// Package fragment provides the document body that every pass operates on:
// an ordered, append-only sequence of already-rendered LaTeX fragments.
//
// A [Stream] owns its fragments and carries a version counter that is bumped
// by every mutation. Results computed by scanning a stream (table regions,
// figure prefixes, rule groups) embed a [Snapshot] of the version they were
// computed against, and [Stream.Check] rejects them once the stream has
// changed:
//
//	s := fragment.NewStream(`\begin{tabular}{ll}`, `\hline`, `\end{tabular}`)
//	snap := s.Snapshot()
//	_ = s.Blank(1)
//	err := s.Check(snap) // errors.Is(err, fragment.ErrStale)
//
// # Errors
//
// Structure the passes do not recognize is reported as a [*StructuralError]
// naming the operation and the approximate fragment index. Such errors are
// fatal for the current render.
//
// A Stream has no internal locking. Each render owns its stream and only one
// goroutine may mutate it at a time.
package fragment
