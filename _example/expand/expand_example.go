package main

import (
	"fmt"
	"log"

	"github.com/jpetkau/lit-vek/expand"
)

func main() {
	inputs := []string{
		`vek![1, 2, 3, ...[4, 5, 6], 7, 8, 9]`,
		`vek![1, ...xs, 7]`,
		`iter![1, ...xs, 7]`,
		`vek![0; 5]`,
	}

	for _, input := range inputs {
		code, err := expand.Expand([]byte(input), &expand.Options{TypeName: "int"})
		if err != nil {
			log.Fatal("expand.Expand:", err)
		}

		fmt.Printf("// %s\n%s\n\n", input, code)
	}
}
