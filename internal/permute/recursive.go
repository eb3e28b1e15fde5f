package permute

import (
	"encoding/binary"
	"iter"
	"slices"
)

// GeneratePermutations returns every arrangement of input produced by
// swap-based backtracking. With excludeDuplicates set, each distinct
// arrangement appears once, in the order it was first reached; otherwise all
// n! orderings are returned, repeats included.
func GeneratePermutations(input any, excludeDuplicates bool) ([]string, error) {
	symbols, err := Symbols(input)
	if err != nil {
		return nil, err
	}

	perms, err := Recursive(symbols, excludeDuplicates)
	if err != nil {
		return nil, err
	}
	return toStrings(perms), nil
}

// GenerateUnique is GeneratePermutations with duplicate suppression on.
func GenerateUnique(input any) ([]string, error) {
	return GeneratePermutations(input, true)
}

// Recursive collects Backtrack(symbols, excludeDuplicates) into a slice.
// An empty symbols slice fails with ErrEmptyInput.
func Recursive[T comparable](symbols []T, excludeDuplicates bool) ([][]T, error) {
	if len(symbols) == 0 {
		return nil, emptyInput(symbols)
	}

	var capacity int
	if !excludeDuplicates {
		capacity = resultCapacity(len(symbols))
	}
	perms := make([][]T, 0, capacity)
	for p := range Backtrack(symbols, excludeDuplicates) {
		perms = append(perms, p)
	}
	return perms, nil
}

// Backtrack yields arrangements of symbols in swap order: position left takes
// the symbol at index left, left+1, ... in turn and the remainder is permuted
// recursively, undoing each swap before the next.
//
// With excludeDuplicates set, a symbol already placed at a position within
// the same loop is skipped, and a completed arrangement equal to an earlier
// one is dropped. Each yielded slice is freshly allocated and symbols is
// never modified.
func Backtrack[T comparable](symbols []T, excludeDuplicates bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(symbols) == 0 {
			return
		}

		work := slices.Clone(symbols)
		right := len(work) - 1

		var emitted map[string]struct{}
		var keys *symbolKeys[T]
		if excludeDuplicates {
			emitted = make(map[string]struct{})
			keys = newSymbolKeys(work)
		}

		var walk func(left int) bool
		walk = func(left int) bool {
			if left == right {
				if excludeDuplicates {
					k := keys.key(work)
					if _, dup := emitted[k]; dup {
						return true
					}
					emitted[k] = struct{}{}
				}
				return yield(slices.Clone(work))
			}

			var seen map[T]struct{}
			if excludeDuplicates {
				seen = make(map[T]struct{}, right-left+1)
			}
			for i := left; i <= right; i++ {
				if excludeDuplicates {
					if _, ok := seen[work[i]]; ok {
						continue
					}
					seen[work[i]] = struct{}{}
				}

				work[left], work[i] = work[i], work[left]
				more := walk(left + 1)
				work[left], work[i] = work[i], work[left]
				if !more {
					return false
				}
			}
			return true
		}

		walk(0)
	}
}

// symbolKeys encodes arrangements of a fixed symbol set as map keys.
// Each distinct symbol gets a small integer id; an arrangement's key is the
// uvarint encoding of its ids, which is prefix-free and therefore unambiguous.
type symbolKeys[T comparable] struct {
	ids map[T]uint64
	buf []byte
}

func newSymbolKeys[T comparable](symbols []T) *symbolKeys[T] {
	ids := make(map[T]uint64, len(symbols))
	for _, s := range symbols {
		if _, ok := ids[s]; !ok {
			ids[s] = uint64(len(ids))
		}
	}
	return &symbolKeys[T]{
		ids: ids,
		buf: make([]byte, 0, len(symbols)*binary.MaxVarintLen64),
	}
}

func (k *symbolKeys[T]) key(arrangement []T) string {
	k.buf = k.buf[:0]
	for _, s := range arrangement {
		k.buf = binary.AppendUvarint(k.buf, k.ids[s])
	}
	return string(k.buf)
}
