// Package expand turns a parsed sequence literal into equivalent Go source:
// either a slice expression (materialized form) or a call into the litvek
// element combinators (lazy form). The emitted code is validated before it is
// returned, so an element expression that is not valid Go surfaces as a
// diagnostic here rather than in the caller's build.
//
// Spread sources in generated code must be slice-shaped in both forms: the
// materialized form spreads with append and sizes the allocation with len,
// and the lazy form emits SpreadSlice and CycleSlice calls. Iterator-shaped
// sources are served by the combinator API and the runtime evaluator, not by
// generated code.
package expand

import (
	"fmt"
	goparser "go/parser"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/jpetkau/lit-vek/ast"
	"github.com/jpetkau/lit-vek/parser"
)

var (
	ErrNestedSpread   = errors.New("spread inside a nested list literal is not supported in generated code")
	ErrNotSliceType   = errors.New("nested list literals need a slice element type")
	ErrBadElementExpr = errors.New("element expression is not valid Go")
)

// Options control the shape of the generated code.
type Options struct {
	// TypeName is the Go element type of the generated sequence. Defaults
	// to "any".
	TypeName string

	// VarName names the accumulator variable of the materialized form.
	// Defaults to "vek".
	VarName string
}

func (o *Options) typeName() string {
	if o == nil || o.TypeName == "" {
		return "any"
	}
	return o.TypeName
}

func (o *Options) varName() string {
	if o == nil || o.VarName == "" {
		return "vek"
	}
	return o.VarName
}

// Expand parses a sequence literal and emits the Go expression matching its
// invocation form. A bare "[...]" literal expands to the materialized form.
func Expand(src []byte, opts *Options) ([]byte, error) {
	root, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}

	if root.Type() == ast.NodeTypeCall && root.Name() == "iter" {
		return Seq(root, opts)
	}
	return Slice(root, opts)
}

// Slice emits the materialized expansion of an element tree: a Go slice
// expression that allocates once, using the size information the literal
// carries, and appends every element in source order. A literal without
// spread or repeat elements collapses to a plain composite literal.
func Slice(root *ast.Node, opts *Options) ([]byte, error) {
	ops, err := flatten(root.List(), opts.typeName())
	if err != nil {
		return nil, err
	}

	src, err := emitSlice(ops, opts)
	if err != nil {
		return nil, err
	}
	return checked(src)
}

// Seq emits the lazy expansion of an element tree: a litvek.Iter call with
// one combinator per element, buffering nothing.
func Seq(root *ast.Node, opts *Options) ([]byte, error) {
	typeName := opts.typeName()
	elems := root.List()

	if len(elems) == 0 {
		return checked(fmt.Sprintf("litvek.Iter[%s]()", typeName))
	}

	args := []string{}
	for _, node := range elems {
		arg, err := seqArg(node, typeName)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "litvek.Iter[%s](\n", typeName)
	for _, arg := range args {
		fmt.Fprintf(&b, "\t%s,\n", arg)
	}
	b.WriteString(")")

	return checked(b.String())
}

func seqArg(node *ast.Node, typeName string) (string, error) {
	switch node.Type() {
	case ast.NodeTypeSpread:
		src, err := renderSpreadSource(node.List()[0], typeName)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("litvek.SpreadSlice(%s)", src), nil

	case ast.NodeTypeRepeat:
		children := node.List()
		count, err := renderExpr(children[1], typeName)
		if err != nil {
			return "", err
		}

		if children[0].Type() == ast.NodeTypeSpread {
			src, err := renderSpreadSource(children[0].List()[0], typeName)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("litvek.CycleSlice(%s, %s)", src, count), nil
		}

		item, err := renderExpr(children[0], typeName)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("litvek.Repeat[%s](%s, %s)", typeName, item, count), nil
	}

	item, err := renderExpr(node, typeName)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("litvek.One[%s](%s)", typeName, item), nil
}

type opKind uint8

const (
	opPush opKind = iota
	opSpread
	opRepeat
	opCycle
)

// op is one append step of the materialized expansion. Consecutive plain
// elements collapse into a single push.
type op struct {
	kind opKind

	exprs []string // opPush
	src   string   // opSpread, opCycle
	item  string   // opRepeat
	count string   // opRepeat, opCycle
}

// flatten walks the element list and groups it into append steps. Spread
// elements whose source is a literal list are shifted into the surrounding
// push groups, the way the plain elements around them are.
func flatten(elems []*ast.Node, typeName string) ([]op, error) {
	ops := []op{}
	push := []string{}

	flush := func() {
		if len(push) > 0 {
			ops = append(ops, op{kind: opPush, exprs: push})
			push = nil
		}
	}

	var walk func(elems []*ast.Node) error
	walk = func(elems []*ast.Node) error {
		for _, node := range elems {
			switch node.Type() {
			case ast.NodeTypeSpread:
				inner := node.List()[0]
				if inner.Type() == ast.NodeTypeList {
					if err := walk(inner.List()); err != nil {
						return err
					}
					continue
				}
				src, err := renderExpr(inner, typeName)
				if err != nil {
					return err
				}
				flush()
				ops = append(ops, op{kind: opSpread, src: src})

			case ast.NodeTypeRepeat:
				children := node.List()
				count, err := renderExpr(children[1], typeName)
				if err != nil {
					return err
				}

				if children[0].Type() == ast.NodeTypeSpread {
					src, err := renderSpreadSource(children[0].List()[0], typeName)
					if err != nil {
						return err
					}
					flush()
					ops = append(ops, op{kind: opCycle, src: src, count: count})
					continue
				}

				item, err := renderExpr(children[0], typeName)
				if err != nil {
					return err
				}
				flush()
				ops = append(ops, op{kind: opRepeat, item: item, count: count})

			default:
				item, err := renderExpr(node, typeName)
				if err != nil {
					return err
				}
				push = append(push, item)
			}
		}
		return nil
	}

	if err := walk(elems); err != nil {
		return nil, err
	}
	flush()

	return ops, nil
}

func emitSlice(ops []op, opts *Options) (string, error) {
	typeName := opts.typeName()
	varName := opts.varName()

	if len(ops) == 0 {
		return fmt.Sprintf("[]%s{}", typeName), nil
	}

	if len(ops) == 1 && ops[0].kind == opPush {
		return fmt.Sprintf("[]%s{%s}", typeName, strings.Join(ops[0].exprs, ", ")), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "func() []%s {\n", typeName)
	fmt.Fprintf(&b, "\t%s := make([]%s, 0, %s)\n", varName, typeName, capacity(ops))

	for _, o := range ops {
		switch o.kind {
		case opPush:
			fmt.Fprintf(&b, "\t%s = append(%s, %s)\n", varName, varName, strings.Join(o.exprs, ", "))
		case opSpread:
			fmt.Fprintf(&b, "\t%s = append(%s, %s...)\n", varName, varName, o.src)
		case opRepeat:
			fmt.Fprintf(&b, "\tfor i := 0; i < %s; i++ {\n", o.count)
			fmt.Fprintf(&b, "\t\t%s = append(%s, %s)\n", varName, varName, o.item)
			b.WriteString("\t}\n")
		case opCycle:
			fmt.Fprintf(&b, "\tfor i := 0; i < %s; i++ {\n", o.count)
			fmt.Fprintf(&b, "\t\t%s = append(%s, %s...)\n", varName, varName, o.src)
			b.WriteString("\t}\n")
		}
	}

	fmt.Fprintf(&b, "\treturn %s\n", varName)
	b.WriteString("}()")

	return b.String(), nil
}

// capacity builds the allocation-size expression: a constant per plain value
// plus a len term per spread source, mirroring what is known about the
// literal before any element runs.
func capacity(ops []op) string {
	fixed := 0
	terms := []string{}

	for _, o := range ops {
		switch o.kind {
		case opPush:
			fixed += len(o.exprs)
		case opSpread:
			terms = append(terms, fmt.Sprintf("len(%s)", o.src))
		case opRepeat:
			terms = append(terms, fmt.Sprintf("(%s)", o.count))
		case opCycle:
			terms = append(terms, fmt.Sprintf("(%s)*len(%s)", o.count, o.src))
		}
	}

	if fixed > 0 || len(terms) == 0 {
		terms = append([]string{strconv.Itoa(fixed)}, terms...)
	}
	return strings.Join(terms, "+")
}

// renderSpreadSource renders the source of a spread that stays a spread in
// the output: literal lists become slice literals, anything else is emitted
// verbatim.
func renderSpreadSource(node *ast.Node, typeName string) (string, error) {
	if node.Type() == ast.NodeTypeList {
		return renderListLiteral(node, "[]"+typeName, typeName)
	}
	return renderExpr(node, typeName)
}

// renderExpr renders a single expression node as Go source.
func renderExpr(node *ast.Node, typeName string) (string, error) {
	switch node.Type() {
	case ast.NodeTypeInt:
		return fmt.Sprintf("%d", node.Value().(int64)), nil

	case ast.NodeTypeFloat:
		return strconv.FormatFloat(node.Value().(float64), 'g', -1, 64), nil

	case ast.NodeTypeString:
		return strconv.Quote(node.Value().(string)), nil

	case ast.NodeTypeSymbol, ast.NodeTypeExpr:
		return node.Value().(string), nil

	case ast.NodeTypeList:
		// a plain nested list has the outer element type, which therefore
		// must itself be a slice type
		if !strings.HasPrefix(typeName, "[]") {
			tok := node.Token()
			line, col := tok.Pos()
			return "", errors.Wrapf(ErrNotSliceType, "%d:%d: %q", line, col, typeName)
		}
		return renderListLiteral(node, typeName, strings.TrimPrefix(typeName, "[]"))
	}

	tok := node.Token()
	line, col := tok.Pos()
	return "", errors.Errorf("unexpected %v node at %d:%d", node.Type(), line, col)
}

// renderListLiteral renders a nested literal list as a Go composite literal
// of the given slice type.
func renderListLiteral(node *ast.Node, sliceType, elemType string) (string, error) {
	items := []string{}
	for _, child := range node.List() {
		if child.Type() == ast.NodeTypeSpread || child.Type() == ast.NodeTypeRepeat {
			tok := child.Token()
			line, col := tok.Pos()
			return "", errorAtPos(ErrNestedSpread, line, col)
		}
		item, err := renderExpr(child, elemType)
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}
	return fmt.Sprintf("%s{%s}", sliceType, strings.Join(items, ", ")), nil
}

func errorAtPos(err error, line, col int) error {
	return errors.Wrapf(err, "%d:%d", line, col)
}

// checked validates that the emitted text is a syntactically valid Go
// expression before handing it back; element expressions are spliced in
// verbatim, so this is where a malformed one is caught.
func checked(src string) ([]byte, error) {
	if _, err := goparser.ParseExpr(src); err != nil {
		return nil, errors.Wrap(ErrBadElementExpr, err.Error())
	}
	return []byte(src), nil
}
