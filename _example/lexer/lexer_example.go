package main

import (
	"fmt"
	"log"

	"github.com/jpetkau/lit-vek/lexer"
)

func main() {
	input := `vek![1, 2, 3, ...[4, 5, 6], 7, 8, 9]`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
