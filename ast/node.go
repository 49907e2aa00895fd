package ast

import (
	"errors"
	"fmt"

	"github.com/jpetkau/lit-vek/lexer"
)

// Node represents a leaf or a branch of the element tree
type Node struct {
	p *Node

	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		v:   v,
		tok: tok,
	}
}

// New creates and returns an orphaned value node based on the given token
func New(tok *lexer.Token, v Valuer) *Node {
	return newNode(v.Type(), tok, v)
}

// NewList creates and returns a node of type "list", an ordered element list
func NewList(tok *lexer.Token) *Node {
	return newNode(NodeTypeList, tok, []*Node{})
}

// NewSpread creates and returns a node of type "spread"; its single child is
// the spread source expression
func NewSpread(tok *lexer.Token) *Node {
	return newNode(NodeTypeSpread, tok, []*Node{})
}

// NewRepeat creates and returns a node of type "repeat"; its children are the
// repeated element and the count expression, in that order
func NewRepeat(tok *lexer.Token) *Node {
	return newNode(NodeTypeRepeat, tok, []*Node{})
}

// NewCall creates and returns a node of type "call", a named invocation
// wrapping an element list. The token is the invocation word.
func NewCall(tok *lexer.Token) *Node {
	return newNode(NodeTypeCall, tok, []*Node{})
}

// PushValue appends a new value node
func (n *Node) PushValue(tok *lexer.Token, v Valuer) (*Node, error) {
	node := New(tok, v)
	if err := n.AppendChild(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushList appends a new list node
func (n *Node) PushList(tok *lexer.Token) (*Node, error) {
	node := NewList(tok)
	if err := n.AppendChild(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushSpread appends a new spread node
func (n *Node) PushSpread(tok *lexer.Token) (*Node, error) {
	node := NewSpread(tok)
	if err := n.AppendChild(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushRepeat appends a new repeat node
func (n *Node) PushRepeat(tok *lexer.Token) (*Node, error) {
	node := NewRepeat(tok)
	if err := n.AppendChild(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Token returns the token associated to the node
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Name returns the invocation word of a call node
func (n Node) Name() string {
	if n.nt == NodeTypeCall && n.tok != nil {
		return n.tok.Text()
	}
	return ""
}

// Value returns the value of the node
func (n Node) Value() interface{} {
	if n.v == nil {
		return nil
	}
	if _, ok := n.v.(Valuer); ok {
		return n.v.(Valuer).Value()
	}
	return n.v
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

func (n Node) String() string {
	switch n.nt {
	case NodeTypeList, NodeTypeSpread, NodeTypeRepeat, NodeTypeCall:
		return fmt.Sprintf("(%v)[%d]", nodeTypeName[n.nt], len(n.List()))
	}
	return fmt.Sprintf("(%v): %v", nodeTypeName[n.nt], n.Value())
}

// AppendChild appends a child node to a parent node of a vector type
func (n *Node) AppendChild(node *Node) error {
	if n.IsVector() {
		n.v = append(n.v.([]*Node), node)
		node.p = n
		return nil
	}
	return errors.New("nodes of type value can't accept children")
}

// IsValue returns true if the node is of a value type
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of a vector type
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

// Parent returns the node that holds this node, if any
func (n *Node) Parent() *Node {
	return n.p
}
