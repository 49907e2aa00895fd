package ast

import (
	"fmt"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	printLevel(n, 0)
}

func printLevel(n *Node, level int) {
	if n == nil {
		fmt.Printf("nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Printf("%s(%s): ", indent, n.Type())

	if n.IsVector() {
		fmt.Printf("(%v)\n", n.Token())
		list := n.List()
		for i := range list {
			printLevel(list[i], level+1)
		}
		return
	}

	fmt.Printf("%#v (%v)\n", n.Value(), n.Token())
}

// Encode transforms a node back into its source text representation
func Encode(n *Node) []byte {
	return []byte(encodeNode(n))
}

func encodeNode(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case NodeTypeCall:
		return fmt.Sprintf("%s![%s]", n.Name(), encodeChildren(n))

	case NodeTypeList:
		return fmt.Sprintf("[%s]", encodeChildren(n))

	case NodeTypeSpread:
		return "..." + encodeChildren(n)

	case NodeTypeRepeat:
		children := n.List()
		if len(children) != 2 {
			panic("repeat node needs an element and a count")
		}
		return fmt.Sprintf("%s; %s", encodeNode(children[0]), encodeNode(children[1]))

	default:
		if v, ok := n.v.(Valuer); ok {
			return v.Encode()
		}
		panic("unknown node type")
	}
}

func encodeChildren(n *Node) string {
	nodes := []string{}
	for _, child := range n.List() {
		nodes = append(nodes, encodeNode(child))
	}
	return strings.Join(nodes, ", ")
}
