package main

import (
	"log"

	"github.com/jpetkau/lit-vek/ast"
	"github.com/jpetkau/lit-vek/parser"
)

func main() {
	input := `iter![...xs, 4, ...ys, 7, ...[8, 9]]`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(root)
}
