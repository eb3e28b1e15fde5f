package permute

import (
	"iter"
	"slices"
)

// GeneratePermutationsIterative returns all n! arrangements of input using
// Heap's algorithm. Arrangements that are equal because input repeats a
// symbol are all kept.
func GeneratePermutationsIterative(input any) ([]string, error) {
	symbols, err := Symbols(input)
	if err != nil {
		return nil, err
	}

	perms, err := Iterative(symbols)
	if err != nil {
		return nil, err
	}
	return toStrings(perms), nil
}

// Iterative collects Heap(symbols) into a slice of exactly n! arrangements.
// An empty symbols slice fails with ErrEmptyInput.
func Iterative[T any](symbols []T) ([][]T, error) {
	if len(symbols) == 0 {
		return nil, emptyInput(symbols)
	}

	perms := make([][]T, 0, resultCapacity(len(symbols)))
	for p := range Heap(symbols) {
		perms = append(perms, p)
	}
	return perms, nil
}

// Heap yields the arrangements of symbols in Heap's transposition order.
//
// The input order is yielded first. A counter c[i] per position and a cursor
// i drive the rest: while i < n, if c[i] < i the symbol at i is swapped with
// index 0 (i even) or index c[i] (i odd), the result is yielded, c[i] is
// incremented and i resets to 0; otherwise c[i] resets to 0 and i advances.
// Each yielded slice is freshly allocated and symbols is never modified.
func Heap[T any](symbols []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(symbols)
		if n == 0 {
			return
		}

		work := slices.Clone(symbols)
		if !yield(slices.Clone(work)) {
			return
		}

		c := make([]int, n)
		for i := 0; i < n; {
			if c[i] < i {
				if i%2 == 0 {
					work[0], work[i] = work[i], work[0]
				} else {
					work[c[i]], work[i] = work[i], work[c[i]]
				}
				if !yield(slices.Clone(work)) {
					return
				}
				c[i]++
				i = 0
			} else {
				c[i] = 0
				i++
			}
		}
	}
}
