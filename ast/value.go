package ast

import (
	"fmt"
)

// Valuer represents a value interface
type Valuer interface {
	Type() NodeType
	Value() interface{}
	Encode() string
}

type nodeValue struct {
	t NodeType
	v interface{}
}

func newNodeValue(t NodeType, v interface{}) *nodeValue {
	return &nodeValue{
		t: t,
		v: v,
	}
}

func (n *nodeValue) Type() NodeType {
	return n.t
}

func (n *nodeValue) Value() interface{} {
	return n.v
}

func (n *nodeValue) Encode() string {
	switch n.t {
	case NodeTypeInt:
		return fmt.Sprintf("%d", n.v)
	case NodeTypeFloat:
		return fmt.Sprintf("%v", n.v)
	case NodeTypeSymbol:
		return fmt.Sprintf("%s", n.v)
	case NodeTypeExpr:
		return fmt.Sprintf("%s", n.v)
	case NodeTypeString:
		return fmt.Sprintf("%q", n.v)
	}

	panic("unreachable")
}

// NewStringValue creates a value of type string
func NewStringValue(v string) Valuer {
	return newNodeValue(NodeTypeString, v)
}

// NewFloatValue creates a value of type float
func NewFloatValue(v float64) Valuer {
	return newNodeValue(NodeTypeFloat, v)
}

// NewIntValue creates a value of type int
func NewIntValue(v int64) Valuer {
	return newNodeValue(NodeTypeInt, v)
}

// NewSymbolValue creates a value of type symbol (a bare identifier)
func NewSymbolValue(v string) Valuer {
	return newNodeValue(NodeTypeSymbol, v)
}

// NewExprValue creates a value of type expr, holding the raw source text of
// an opaque host-language expression
func NewExprValue(v string) Valuer {
	return newNodeValue(NodeTypeExpr, v)
}

var _ = Valuer(&nodeValue{})
