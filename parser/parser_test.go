package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jpetkau/lit-vek/ast"
)

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  `[]`,
			Out: `[]`,
		},
		{
			In:  `vek![]`,
			Out: `vek![]`,
		},
		{
			In:  `iter![]`,
			Out: `iter![]`,
		},
		{
			In:  `[1]`,
			Out: `[1]`,
		},
		{
			In:  `[1, 2, 3]`,
			Out: `[1, 2, 3]`,
		},
		{
			In:  `[1,2,3,]`,
			Out: `[1, 2, 3]`,
		},
		{
			In:  "[1,\n\t 2,\n\n3,\n]",
			Out: "[1, 2, 3]",
		},
		{
			In:  `[1.5, 2.25, 3.125]`,
			Out: `[1.5, 2.25, 3.125]`,
		},
		{
			In:  `vek![1, 2, 3, ...[4,5,6], 7, 8, 9]`,
			Out: `vek![1, 2, 3, ...[4, 5, 6], 7, 8, 9]`,
		},
		{
			In:  `vek![...[1,2], ...[3,4]]`,
			Out: `vek![...[1, 2], ...[3, 4]]`,
		},
		{
			In:  `iter![...xs, 4, ...ys, 7]`,
			Out: `iter![...xs, 4, ...ys, 7]`,
		},
		{
			In:  `[1, [2, 3], 4]`,
			Out: `[1, [2, 3], 4]`,
		},
		{
			In:  `[...[1, [2, 3]], 4]`,
			Out: `[...[1, [2, 3]], 4]`,
		},
		{
			In:  `["a", "b c", "d, e"]`,
			Out: `["a", "b c", "d, e"]`,
		},
		{
			In:  `[n + 1, f(a, b), xs[0]]`,
			Out: `[n + 1, f(a, b), xs[0]]`,
		},
		{
			In:  `[0; 5]`,
			Out: `[0; 5]`,
		},
		{
			In:  `vek![0;5]`,
			Out: `vek![0; 5]`,
		},
		{
			In:  `iter![...xs; 3]`,
			Out: `iter![...xs; 3]`,
		},
		{
			In:  `[...[1, 2]; 3]`,
			Out: `[...[1, 2]; 3]`,
		},
		{
			In:  `[x; n * 2]`,
			Out: `[x; n * 2]`,
		},
		{
			In:  `[-1, +2.5]`,
			Out: `[-1, +2.5]`,
		},
	}

	for i := range testCases {
		root, err := Parse([]byte(testCases[i].In))
		assert.NoError(t, err, "case %d: %q", i, testCases[i].In)
		assert.NotNil(t, root)

		s := ast.Encode(root)
		assert.Equal(t, testCases[i].Out, string(s), "case %d: %q", i, testCases[i].In)
	}
}

func TestParserDiagnostics(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{
			In:  ``,
			Err: ErrUnexpectedEOF,
		},
		{
			In:  `vek![1, ..., 2]`,
			Err: ErrDanglingSpread,
		},
		{
			In:  `vek![...]`,
			Err: ErrDanglingSpread,
		},
		{
			In:  `vek![1, ...]`,
			Err: ErrDanglingSpread,
		},
		{
			In:  `vek![1, , 2]`,
			Err: ErrEmptyElement,
		},
		{
			In:  `vek![1, 2`,
			Err: ErrUnexpectedEOF,
		},
		{
			In:  `vek![1, ...xs`,
			Err: ErrUnexpectedEOF,
		},
		{
			In:  `vek!(1, 2)`,
			Err: ErrUnexpectedToken,
		},
		{
			In:  `vek[1]`,
			Err: ErrUnexpectedToken,
		},
		{
			In:  `wek![1]`,
			Err: ErrUnknownForm,
		},
		{
			In:  `vek![1 .. 2]`,
			Err: ErrUnexpectedToken,
		},
		{
			In:  `vek![....xs]`,
			Err: ErrUnexpectedToken,
		},
		{
			In:  `vek![1; 2; 3]`,
			Err: ErrUnexpectedToken,
		},
		{
			In:  `vek![1, 2; 3]`,
			Err: ErrUnexpectedToken,
		},
		{
			In:  `vek![1; ]`,
			Err: ErrMissingCount,
		},
		{
			In:  `vek![1] 2`,
			Err: ErrUnexpectedToken,
		},
		{
			In:  `vek![)]`,
			Err: ErrUnexpectedToken,
		},
		{
			In:  `vek!["abc]`,
			Err: ErrUnexpectedEOF,
		},
	}

	for i := range testCases {
		root, err := Parse([]byte(testCases[i].In))
		assert.Error(t, err, "case %d: %q", i, testCases[i].In)
		assert.ErrorIs(t, err, testCases[i].Err, "case %d: %q", i, testCases[i].In)
		assert.Nil(t, root)
	}
}

func TestParserRoot(t *testing.T) {
	p := New(strings.NewReader(`vek![1, ...xs]`))
	err := p.Parse()
	assert.NoError(t, err)

	root := p.Root()
	assert.Equal(t, ast.NodeTypeCall, root.Type())
	assert.Equal(t, "vek", root.Name())

	elems := root.List()
	assert.Equal(t, 2, len(elems))
	assert.Equal(t, ast.NodeTypeInt, elems[0].Type())
	assert.Equal(t, ast.NodeTypeSpread, elems[1].Type())
}
