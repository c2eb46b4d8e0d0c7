package fragment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_AppendAndString(t *testing.T) {
	var s Stream
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "", s.String())

	s.Append(`\begin{tabular}{l}`, "\n", `\end{tabular}`)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "\\begin{tabular}{l}\n\\end{tabular}", s.String())
	assert.Equal(t, "\n", s.At(1).Text)
	assert.Equal(t, `\end{tabular}`, s.At(2).Trimmed())
}

func TestStream_VersionBumps(t *testing.T) {
	s := NewStream("a", "b")
	v := s.Version()

	s.Append()
	assert.Equal(t, v, s.Version(), "empty append is not a mutation")

	require.NoError(t, s.Replace(0, "x"))
	assert.Greater(t, s.Version(), v)

	v = s.Version()
	require.NoError(t, s.Blank(1))
	assert.Greater(t, s.Version(), v)
	assert.True(t, s.At(1).IsBlank())
	assert.Equal(t, 2, s.Len())

	v = s.Version()
	require.NoError(t, s.Insert(1, "y"))
	assert.Greater(t, s.Version(), v)
	assert.Equal(t, []string{"x", "y", ""}, s.Texts())

	v = s.Version()
	s.Assign([]Fragment{{Text: "z"}})
	assert.Greater(t, s.Version(), v)
	assert.Equal(t, []string{"z"}, s.Texts())
}

func TestStream_Insert(t *testing.T) {
	s := NewStream("a", "d")
	require.NoError(t, s.Insert(1, "b", "c"))
	require.NoError(t, s.Insert(4, "e"))
	require.NoError(t, s.Insert(0))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, s.Texts())

	assert.ErrorIs(t, s.Insert(6, "x"), ErrOutOfRange)
	assert.ErrorIs(t, s.Insert(-1, "x"), ErrOutOfRange)
}

func TestStream_Slice(t *testing.T) {
	s := NewStream("a", "b", "c")
	got, err := s.Slice(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []Fragment{{Text: "b"}, {Text: "c"}}, got)

	got[0].Text = "changed"
	assert.Equal(t, "b", s.At(1).Text, "slice must be a copy")

	_, err = s.Slice(2, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = s.Slice(0, 4)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestStream_ReplaceOutOfRange(t *testing.T) {
	s := NewStream("a")
	assert.ErrorIs(t, s.Replace(1, "x"), ErrOutOfRange)
	assert.ErrorIs(t, s.Blank(-1), ErrOutOfRange)
}

func TestStream_Check(t *testing.T) {
	s := NewStream("a")
	snap := s.Snapshot()
	assert.NoError(t, s.Check(snap))
	assert.Equal(t, s.Version(), snap.Version())

	other := NewStream("a")
	assert.ErrorIs(t, other.Check(snap), ErrStale)
	assert.ErrorIs(t, s.Check(Snapshot{}), ErrStale)

	s.Append("b")
	assert.ErrorIs(t, s.Check(snap), ErrStale)
	assert.NoError(t, s.Check(s.Snapshot()))
}

func TestStructuralError(t *testing.T) {
	sentinel := errors.New("no table environment")
	err := NewStructuralError("find table", 7, sentinel, "%s has no match", `\end{longtable}`)

	assert.Equal(t, `find table: no table environment (near fragment 7): \end{longtable} has no match`, err.Error())
	assert.ErrorIs(t, err, sentinel)
	assert.True(t, IsStructural(err))

	wrapped := errors.Join(errors.New("render"), err)
	assert.True(t, IsStructural(wrapped))
	assert.False(t, IsStructural(sentinel))

	bare := &StructuralError{Op: "patch", Index: 2, Err: sentinel}
	assert.Equal(t, "patch: no table environment (near fragment 2)", bare.Error())
}
