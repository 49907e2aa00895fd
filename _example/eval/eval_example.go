package main

import (
	"fmt"
	"log"

	litvek "github.com/jpetkau/lit-vek"
)

func main() {
	env := litvek.Env{
		"xs": []int{4, 5, 6},
		"n":  9,
	}

	values, err := litvek.Eval(`vek![1, 2, 3, ...xs, 7, 8, n]`, env)
	if err != nil {
		log.Fatal("litvek.Eval:", err)
	}
	fmt.Println(values)

	seq, err := litvek.EvalSeq(`iter![...xs; 2]`, env)
	if err != nil {
		log.Fatal("litvek.EvalSeq:", err)
	}
	for v, err := range seq {
		if err != nil {
			log.Fatal("iterate:", err)
		}
		fmt.Println(v)
	}
}
