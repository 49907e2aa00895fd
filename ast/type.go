package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeInt    = nodeTypeValue | 1
	NodeTypeFloat  = nodeTypeValue | 2
	NodeTypeString = nodeTypeValue | 4
	NodeTypeSymbol = nodeTypeValue | 8
	NodeTypeExpr   = nodeTypeValue | 16

	NodeTypeList   = nodeTypeVector | 1
	NodeTypeSpread = nodeTypeVector | 2
	NodeTypeRepeat = nodeTypeVector | 4
	NodeTypeCall   = nodeTypeVector | 8
)

var nodeTypeName = map[NodeType]string{
	NodeTypeInt:    "int",
	NodeTypeFloat:  "float",
	NodeTypeString: "string",
	NodeTypeSymbol: "symbol",
	NodeTypeExpr:   "expr",

	NodeTypeList:   "list",
	NodeTypeSpread: "spread",
	NodeTypeRepeat: "repeat",
	NodeTypeCall:   "call",
}

func (nt NodeType) String() string {
	if s, ok := nodeTypeName[nt]; ok {
		return s
	}
	return "unknown"
}
