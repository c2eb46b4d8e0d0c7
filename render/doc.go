// Package render replays a render trace into a document body and fires the
// post-processing passes at the points the LaTeX writer would.
//
// A trace interleaves emitted fragments with directive events. A
// gridfigure event follows a table and the figure wrapping it; a
// tabularrows event follows the table it configures:
//
//	steps:
//	  - emit: "\\begin{figure}[htbp]"
//	  - emit_lines:
//	      - "\\begin{longtable}{|l|l|}"
//	      - ...
//	      - "\\end{longtable}"
//	  - tabularrows:
//	      hline-hide: "-1"
//	  - gridfigure: true
//	  - emit: "\\caption{Stations}"
//	  - emit: "\\end{figure}"
//
// Structural errors abort the replay. Directive problems caused by user
// input (malformed selectors, conflicting options) disable only that
// directive and are reported as warnings.
package render
