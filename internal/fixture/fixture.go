// Package fixture holds rendered table fragments shared by the package
// tests. The layouts mirror what the LaTeX writer emits for each table
// environment.
package fixture

import "github.com/tsawler/texbody/marker"

// FromPrevious is the continuation head caption row of a two-column
// longtable.
var FromPrevious = `\multicolumn{2}{c}{\makebox[0pt]{` + marker.ContinuedFromPrevious.Literal() + `}}\\`

// OnNext is the continuation foot caption row of a two-column longtable.
var OnNext = `\multicolumn{2}{r}{\makebox[0pt][r]{` + marker.ContinuedOnNext.Literal() + `}}\\`

// Tabular returns a Plain table with three rules:
//
//	0 begin, 1 rule, 2 row, 3 rule, 4 row, 5 rule, 6 end
func Tabular() []string {
	return []string{
		`\begin{tabular}[c]{|l|l|}`,
		`\hline`,
		`a & 1\\`,
		`\hline`,
		`b & 2\\`,
		`\hline`,
		`\end{tabular}`,
	}
}

// Longtable returns a Paginated table whose head has a rule above and below
// the header row. Its logical rules and their fragment indices are:
//
//	group 0: 1, 6   (top rule, repeated by the continuation head)
//	group 1: 3, 8   (rule under the header, repeated)
//	group 2: 15
//	group 3: 10, 17 (last rule, repeated by the continuation foot)
func Longtable() []string {
	return []string{
		`\begin{longtable}{|l|l|}`, // 0
		`\hline`,                   // 1
		`\textsf{Name} & \textsf{Value}\\`,
		`\hline`, // 3
		`\endfirsthead`,
		FromPrevious, // 5
		`\hline`,     // 6
		`\textsf{Name} & \textsf{Value}\\`,
		`\hline`, // 8
		`\endhead`,
		`\hline`, // 10
		OnNext,
		`\endfoot`,
		`\endlastfoot`,
		`a & 1\\`,
		`\hline`, // 15
		`b & 2\\`,
		`\hline`, // 17
		`\end{longtable}`,
	}
}

// ShortHeadLongtable returns a Paginated table with a single rule in its
// head. Its groups are {1, 5}, {13} and {8, 15}.
func ShortHeadLongtable() []string {
	return []string{
		`\begin{longtable}{|l|l|}`, // 0
		`\hline`,                   // 1
		`\textsf{Name} & \textsf{Value}\\`,
		`\endfirsthead`,
		FromPrevious,
		`\hline`, // 5
		`\textsf{Name} & \textsf{Value}\\`,
		`\endhead`,
		`\hline`, // 8
		OnNext,
		`\endfoot`,
		`\endlastfoot`,
		`a & 1\\`,
		`\hline`, // 13
		`b & 2\\`,
		`\hline`, // 15
		`\end{longtable}`,
	}
}

// Concat joins fragment lists.
func Concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
