package litvek

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChain(t *testing.T) {
	assert.Nil(t, slices.Collect(Chain[int]()))

	got := slices.Collect(Chain(
		slices.Values([]int{1, 2}),
		slices.Values([]int{}),
		slices.Values([]int{3}),
	))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestChainEarlyStop(t *testing.T) {
	got := []int{}
	for v := range Chain(slices.Values([]int{1, 2}), slices.Values([]int{3, 4})) {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestCycleN(t *testing.T) {
	oneToThree := slices.Values([]int{1, 2, 3})

	assert.Nil(t, slices.Collect(CycleN(oneToThree, 0)))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(CycleN(oneToThree, 1)))
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, slices.Collect(CycleN(oneToThree, 2)))

	assert.Nil(t, slices.Collect(CycleN(slices.Values([]int{}), 10)))
}
