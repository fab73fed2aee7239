package gen

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// orderAfter sorts items so that each one follows everything before(item)
// returns. Ties go to the smaller key, so the output does not depend on the
// input order. Dependencies outside items are ignored. A cycle is an error
// naming the items caught in it.
func orderAfter[T comparable](items []T, key func(T) string, before func(T) []T) ([]T, error) {
	if len(items) == 0 {
		return nil, nil
	}

	sorted := slices.Clone(items)
	sort.SliceStable(sorted, func(i, j int) bool { return key(sorted[i]) < key(sorted[j]) })

	index := make(map[T]int, len(sorted))
	for i, it := range sorted {
		index[it] = i
	}

	indeg := make([]int, len(sorted))
	next := make([][]int, len(sorted))

	for i, it := range sorted {
		for _, dep := range before(it) {
			j, ok := index[dep]
			if !ok {
				continue
			}

			indeg[i]++
			next[j] = append(next[j], i)
		}
	}

	var ready []int

	for i, d := range indeg {
		if d == 0 {
			ready = append(ready, i)
		}
	}

	out := make([]T, 0, len(sorted))

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		out = append(out, sorted[i])

		for _, j := range next[i] {
			if indeg[j]--; indeg[j] == 0 {
				k, _ := slices.BinarySearch(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	if len(out) != len(sorted) {
		var stuck []string

		for i, d := range indeg {
			if d > 0 {
				stuck = append(stuck, key(sorted[i]))
			}
		}

		return nil, fmt.Errorf("dependency cycle among %s", strings.Join(stuck, ", "))
	}

	return out, nil
}
