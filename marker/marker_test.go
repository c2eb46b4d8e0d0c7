package marker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_Literals(t *testing.T) {
	tests := []struct {
		kind  Kind
		name  string
		begin string
		end   string
	}{
		{Plain, "tabular", `\begin{tabular}`, `\end{tabular}`},
		{Flexible, "tabulary", `\begin{tabulary}`, `\end{tabulary}`},
		{Paginated, "longtable", `\begin{longtable}`, `\end{longtable}`},
		{Unknown, "unknown", "", ""},
		{Kind(42), "unknown", "", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.kind.String())
		assert.Equal(t, tt.begin, tt.kind.Begin())
		assert.Equal(t, tt.end, tt.kind.End())
	}
}

func TestKind_MatchesBegin(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{`\begin{tabular}`, Plain},
		{`  \begin{tabular}{|l|r|}` + "\n", Plain},
		{`\begin{tabular}[t]{ll}`, Plain},
		{`\begin{tabulary}{\linewidth}{LL}`, Flexible},
		{`\begin{longtable}{|l|l|}`, Paginated},
		{`\begin{longtablex}`, Unknown},
		{`\begin{figure}[htbp]`, Unknown},
		{`text \begin{tabular}`, Unknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BeginKind(tt.text), "BeginKind(%q)", tt.text)
	}

	assert.False(t, Plain.MatchesBegin(`\begin{tabulary}`))
	assert.False(t, Unknown.MatchesBegin(`\begin{tabular}`))
}

func TestKind_MatchesEnd(t *testing.T) {
	assert.Equal(t, Paginated, EndKind("\\end{longtable}\n\n"))
	assert.Equal(t, Plain, EndKind(`\end{tabular}`))
	assert.Equal(t, Flexible, EndKind(` \end{tabulary} `))
	assert.Equal(t, Unknown, EndKind(`\end{tabular}{x}`))
	assert.Equal(t, Unknown, EndKind(`\end{figure}`))
}

func TestIsRule(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{`\hline`, true},
		{"  \\hline\n", true},
		{`\cline{2-3}`, true},
		{`\cline{10-12}`, true},
		{`\cline{2}`, false},
		{`\hline \multicolumn{2}{r}{x}`, false},
		{`a & b \\ \hline`, false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsRule(tt.text), "IsRule(%q)", tt.text)
	}
}

func TestIsFigureBegin(t *testing.T) {
	assert.True(t, IsFigureBegin(`\begin{figure}`))
	assert.True(t, IsFigureBegin("\n\\begin{figure}[htbp]\n"))
	assert.False(t, IsFigureBegin(`\end{figure}`))
	assert.False(t, IsFigureBegin(`% \begin{figure}`))
}

func TestBoilerplateOf(t *testing.T) {
	assert.Equal(t, FirstHead, BoilerplateOf(`\endfirsthead`))
	assert.Equal(t, ContinuationHead, BoilerplateOf(" \\endhead\n"))
	assert.Equal(t, ContinuationFoot, BoilerplateOf(`\endfoot`))
	assert.Equal(t, LastFoot, BoilerplateOf(`\endlastfoot`))
	assert.Equal(t, NoBoilerplate, BoilerplateOf(`\endheadx`))
	assert.Equal(t, "none", NoBoilerplate.String())
	assert.Equal(t, `\endhead`, ContinuationHead.String())
}

func TestCaption_Renumber(t *testing.T) {
	frag := `\multicolumn{2}{c}{\makebox[0pt]{` + ContinuedFromPrevious.Literal() + `}}\\`
	assert.True(t, ContinuedFromPrevious.In(frag))
	assert.False(t, ContinuedOnNext.In(frag))

	got := ContinuedFromPrevious.Renumber(frag)
	want := `\multicolumn{2}{c}{\makebox[0pt]{\tablecontinued{\figurename\ \thefigure{} -- continued from previous page}}}\\`
	assert.Equal(t, want, got)
	assert.False(t, ContinuedFromPrevious.In(got))

	assert.Equal(t, "plain", ContinuedOnNext.Renumber("plain"))
	assert.Equal(t, "continued on next page", ContinuedOnNext.String())
}
