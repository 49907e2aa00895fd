// Package litvek builds sequences out of literal-like element lists that mix
// plain values with inline-expanded ("spread") iterable values:
//
//	litvek.Vek(litvek.One(1), litvek.SpreadSlice([]int{2, 3}), litvek.One(4))
//	// [1 2 3 4]
//
// The same element grammar is also accepted as source text, in an eagerly
// materialized form ("vek![...]") and a lazy one ("iter![...]"):
//
//	litvek.Eval("vek![1, 2, 3, ...[4, 5, 6], 7, 8, 9]", nil)
//	// [1 2 3 4 5 6 7 8 9]
//
// A spread element is marked with three dots and expands to every value its
// source yields, in place and in source order. Malformed literals are
// rejected with a diagnostic before any value is produced.
package litvek

import (
	"iter"
)

// Env holds the variables visible to the expressions of a literal.
type Env map[string]any

// Eval parses a sequence literal, evaluates every element expression once,
// left to right, and returns the materialized sequence.
func Eval(src string, env Env) ([]any, error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return p.Run(env)
}

// EvalSeq parses a sequence literal and returns a lazy sequence over it.
// Syntax and expression-compile diagnostics are reported here; element
// expressions themselves only run once the consumer reaches them.
func EvalSeq(src string, env Env) (iter.Seq2[any, error], error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return p.Seq(env), nil
}
