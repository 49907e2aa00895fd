package expand

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPlainLiteral(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  `vek![]`,
			Out: `[]int{}`,
		},
		{
			In:  `vek![1, 2, 3]`,
			Out: `[]int{1, 2, 3}`,
		},
		// spreads of literal lists are shifted into the surrounding
		// literal, so no helper function is needed at all
		{
			In:  `vek![1, 2, 3, ...[4, 5, 6], 7, 8, 9]`,
			Out: `[]int{1, 2, 3, 4, 5, 6, 7, 8, 9}`,
		},
		{
			In:  `vek![...[1, 2], ...[3, 4]]`,
			Out: `[]int{1, 2, 3, 4}`,
		},
	}

	for i := range testCases {
		got, err := Expand([]byte(testCases[i].In), &Options{TypeName: "int"})
		require.NoError(t, err, "case %d: %q", i, testCases[i].In)
		assert.Equal(t, testCases[i].Out, string(got), "case %d: %q", i, testCases[i].In)
	}
}

func TestExpandSlice(t *testing.T) {
	testCases := []string{
		`vek![1, ...xs, 7]`,
		`vek![...xs, ...ys]`,
		`vek![1, 2, ...xs, 3, ...[4, 5], 6]`,
		`vek![0; 5]`,
		`vek![x; n * 2]`,
		`vek![...xs; 3]`,
		`vek![...[1, 2]; 3]`,
	}

	for _, in := range testCases {
		got, err := Expand([]byte(in), &Options{TypeName: "int"})
		require.NoError(t, err, "%q", in)
		snaps.MatchSnapshot(t, in, string(got))
	}
}

func TestExpandSeq(t *testing.T) {
	testCases := []string{
		`iter![]`,
		`iter![1, 2, 3]`,
		`iter![1, ...xs, 7]`,
		`iter![...[4, 5, 6]]`,
		`iter![0; 5]`,
		`iter![...xs; 3]`,
	}

	for _, in := range testCases {
		got, err := Expand([]byte(in), &Options{TypeName: "int"})
		require.NoError(t, err, "%q", in)
		snaps.MatchSnapshot(t, in, string(got))
	}
}

func TestExpandDefaults(t *testing.T) {
	got, err := Expand([]byte(`[1, ...xs]`), nil)
	require.NoError(t, err)

	assert.Contains(t, string(got), "[]any")
	assert.Contains(t, string(got), "vek :=")
}

func TestExpandVarName(t *testing.T) {
	got, err := Expand([]byte(`vek![1, ...xs]`), &Options{TypeName: "int", VarName: "out"})
	require.NoError(t, err)

	assert.Contains(t, string(got), "out := make([]int, 0, 1+len(xs))")
	assert.Contains(t, string(got), "return out")
}

func TestExpandNestedList(t *testing.T) {
	got, err := Expand([]byte(`vek![[1, 2], [3]]`), &Options{TypeName: "[]int"})
	require.NoError(t, err)
	assert.Equal(t, `[][]int{[]int{1, 2}, []int{3}}`, string(got))
}

func TestExpandDiagnostics(t *testing.T) {
	_, err := Expand([]byte(`vek![1, ..., 2]`), nil)
	assert.Error(t, err)

	_, err = Expand([]byte(`vek![[1, 2]]`), &Options{TypeName: "int"})
	assert.ErrorIs(t, err, ErrNotSliceType)

	_, err = Expand([]byte(`vek![[1, ...xs], 2]`), &Options{TypeName: "[]int"})
	assert.ErrorIs(t, err, ErrNestedSpread)

	_, err = Expand([]byte(`vek![a &, 2]`), &Options{TypeName: "int"})
	assert.ErrorIs(t, err, ErrBadElementExpr)
}
