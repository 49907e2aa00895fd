package litvek

import (
	"iter"
	"reflect"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"

	"github.com/jpetkau/lit-vek/ast"
	"github.com/jpetkau/lit-vek/parser"
)

// Evaluation-time diagnostics. Parse-time ones live in the parser package.
var (
	ErrNotIterable = errors.New("spread source is not iterable")
	ErrBadCount    = errors.New("repeat count is not an integer")
)

// Form tells which invocation a literal used.
type Form uint8

// Invocation forms: "vek![...]" materializes, "iter![...]" stays lazy. A bare
// "[...]" literal defaults to the materialized form.
const (
	FormVek Form = iota
	FormIter
)

// Program is a compiled sequence literal, ready to run against an
// environment.
type Program struct {
	form  Form
	elems []compiledElement
}

type evalFunc func(env Env) (any, error)

// compiledElement is the runtime counterpart of one element node: how to
// produce its value, whether the value is expanded as a spread source, and an
// optional repeat count.
type compiledElement struct {
	value  evalFunc
	count  evalFunc
	spread bool

	line int
	col  int
}

// Compile parses a sequence literal and compiles every element expression.
// All syntax diagnostics and expression compile errors surface here; a
// returned Program can be run many times against different environments.
func Compile(src string) (*Program, error) {
	root, err := parser.Parse([]byte(src))
	if err != nil {
		return nil, err
	}

	form := FormVek
	if root.Type() == ast.NodeTypeCall && root.Name() == "iter" {
		form = FormIter
	}

	elems, err := compileElements(root)
	if err != nil {
		return nil, err
	}

	return &Program{form: form, elems: elems}, nil
}

// Form returns the invocation form the literal was written in.
func (p *Program) Form() Form {
	return p.form
}

// Run evaluates the literal eagerly: every element expression runs exactly
// once, left to right, and every spread source is drained in place. All
// spread sources must be finite.
func (p *Program) Run(env Env) ([]any, error) {
	return runElements(p.elems, env)
}

// Seq returns the lazy form of the literal: each element expression runs when
// the consumer reaches it, and spread sources are iterated without being
// materialized first, so they may be infinite. Evaluation failures are
// yielded as the second value and terminate the sequence.
func (p *Program) Seq(env Env) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		for i := range p.elems {
			ce := &p.elems[i]

			v, err := ce.value(env)
			if err != nil {
				yield(nil, err)
				return
			}

			n := 1
			if ce.count != nil {
				if n, err = ce.runCount(env); err != nil {
					yield(nil, err)
					return
				}
			}

			if !ce.spread {
				for j := 0; j < n; j++ {
					if !yield(v, nil) {
						return
					}
				}
				continue
			}

			seq, err := ce.spreadSeq(v)
			if err != nil {
				yield(nil, err)
				return
			}
			for j := 0; j < n; j++ {
				for x := range seq {
					if !yield(x, nil) {
						return
					}
				}
			}
		}
	}
}

// runElements is the eager pass shared by Run and nested list elements: it
// translates every compiled element into its element-combinator counterpart
// and materializes the lot.
func runElements(elems []compiledElement, env Env) ([]any, error) {
	out := make([]Element[any], 0, len(elems))

	for i := range elems {
		ce := &elems[i]

		v, err := ce.value(env)
		if err != nil {
			return nil, err
		}

		n := 1
		if ce.count != nil {
			if n, err = ce.runCount(env); err != nil {
				return nil, err
			}
		}

		switch {
		case !ce.spread && ce.count == nil:
			out = append(out, One(v))
		case !ce.spread:
			out = append(out, Repeat(v, n))
		default:
			vals, err := ce.spreadValues(v)
			if err != nil {
				return nil, err
			}
			if ce.count == nil {
				out = append(out, SpreadSlice(vals))
			} else {
				out = append(out, CycleSlice(vals, n))
			}
		}
	}

	return Vek(out...), nil
}

func (ce *compiledElement) runCount(env Env) (int, error) {
	v, err := ce.count(env)
	if err != nil {
		return 0, err
	}
	n, ok := asInt(v)
	if !ok || n < 0 {
		return 0, errors.Wrapf(ErrBadCount, "%d:%d: %v", ce.line, ce.col, v)
	}
	return n, nil
}

// spreadValues drains a spread source into a slice.
func (ce *compiledElement) spreadValues(v any) ([]any, error) {
	seq, err := ce.spreadSeq(v)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// spreadSeq converts a spread source into a sequence: Go slices and arrays of
// any element type are accepted, as are iter.Seq values.
func (ce *compiledElement) spreadSeq(v any) (iter.Seq[any], error) {
	switch src := v.(type) {
	case []any:
		return slices.Values(src), nil
	case iter.Seq[any]:
		return src, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(any) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		}, nil
	}

	return nil, errors.Wrapf(ErrNotIterable, "%d:%d: %T", ce.line, ce.col, v)
}

// compileElements compiles the children of a list or call node in source
// order.
func compileElements(root *ast.Node) ([]compiledElement, error) {
	elems := []compiledElement{}

	for _, node := range root.List() {
		ce, err := compileElement(node)
		if err != nil {
			return nil, err
		}
		elems = append(elems, ce)
	}

	return elems, nil
}

func compileElement(node *ast.Node) (compiledElement, error) {
	ce := compiledElement{}
	ce.line, ce.col = node.Token().Pos()

	item := node
	if node.Type() == ast.NodeTypeRepeat {
		children := node.List()
		item = children[0]

		count, err := compileValue(children[1])
		if err != nil {
			return ce, err
		}
		ce.count = count
	}

	if item.Type() == ast.NodeTypeSpread {
		ce.spread = true
		item = item.List()[0]
	}

	value, err := compileValue(item)
	if err != nil {
		return ce, err
	}
	ce.value = value

	return ce, nil
}

// compileValue compiles a single expression node: literal constants are
// closed over directly, nested lists recurse, and everything else goes
// through the expression engine.
func compileValue(node *ast.Node) (evalFunc, error) {
	switch node.Type() {
	case ast.NodeTypeInt:
		v := int(node.Value().(int64))
		return constant(v), nil

	case ast.NodeTypeFloat:
		v := node.Value().(float64)
		return constant(v), nil

	case ast.NodeTypeString:
		v := node.Value().(string)
		return constant(v), nil

	case ast.NodeTypeSymbol, ast.NodeTypeExpr:
		src := node.Value().(string)
		program, err := expr.Compile(src)
		if err != nil {
			line, col := node.Token().Pos()
			return nil, errors.Wrapf(err, "%d:%d: %q", line, col, src)
		}
		return func(env Env) (any, error) {
			v, err := vm.Run(program, map[string]any(env))
			if err != nil {
				line, col := node.Token().Pos()
				return nil, errors.Wrapf(err, "%d:%d: %q", line, col, src)
			}
			return v, nil
		}, nil

	case ast.NodeTypeList:
		elems, err := compileElements(node)
		if err != nil {
			return nil, err
		}
		return func(env Env) (any, error) {
			vals, err := runElements(elems, env)
			if err != nil {
				return nil, err
			}
			return vals, nil
		}, nil
	}

	line, col := node.Token().Pos()
	return nil, errors.Errorf("unexpected %v node at %d:%d", node.Type(), line, col)
}

func constant(v any) evalFunc {
	return func(Env) (any, error) {
		return v, nil
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
