package selector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		expr string
		n    int
		want []int
	}{
		{"0", 5, []int{0}},
		{"-1", 5, []int{4}},
		{"1:3", 5, []int{1, 2}},
		{"10", 5, []int{}},
		{"-6", 5, []int{}},
		{"0,2;4", 5, []int{0, 2, 4}},
		{"0 2\t4", 5, []int{0, 2, 4}},
		{"1 : 3", 5, []int{1, 2}},
		{"3:", 5, []int{3, 4}},
		{":2", 5, []int{0, 1}},
		{"::2", 5, []int{0, 2, 4}},
		{"::-1", 5, []int{0, 1, 2, 3, 4}},
		{"-2:", 5, []int{3, 4}},
		{"1:100", 5, []int{1, 2, 3, 4}},
		{"-100:2", 5, []int{0, 1}},
		{"3:1", 5, []int{}},
		{"3:1:-1", 5, []int{2, 3}},
		{"::-2", 5, []int{0, 2, 4}},
		{":", 3, []int{0, 1, 2}},
		{"0 0 -5", 5, []int{0}},
		{"-1 1:2 4", 6, []int{1, 4, 5}},
		{"", 5, []int{}},
		{"0", 0, []int{}},
		{"1::9223372036854775807", 5, []int{1}},
		{"::9223372036854775807", 5, []int{0}},
		{"4::-9223372036854775808", 5, []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Resolve(tt.expr, tt.n)
			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		expr  string
		chunk string
	}{
		{"1 x 3", "x"},
		{"1:2:3:4", "1:2:3:4"},
		{"::0", "::0"},
		{"1.5", "1.5"},
		{"2,-", "-"},
		{"a:b", "a:b"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := Parse(tt.expr)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed))

			var me *MalformedError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, tt.chunk, me.Chunk)
			assert.Equal(t, tt.expr, me.Expr)
			assert.Contains(t, err.Error(), tt.chunk)
		})
	}
}

func TestSelector_String(t *testing.T) {
	sel, err := Parse(" -1,1 : 2;; 4 ")
	require.NoError(t, err)
	assert.Equal(t, 3, sel.Len())
	assert.False(t, sel.Empty())
	assert.Equal(t, "-1 1:2 4", sel.String())

	empty, err := Parse("  ")
	require.NoError(t, err)
	assert.True(t, empty.Empty())
	assert.Empty(t, empty.Resolve(3))
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { MustParse("1:2") })
	assert.Panics(t, func() { MustParse("nope") })
}
