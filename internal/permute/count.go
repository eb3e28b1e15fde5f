package permute

import "math/big"

// maxPreallocated bounds the slice capacity reserved up front; larger
// results grow by append.
const maxPreallocated = 1 << 16

// Factorial returns n!. It returns nil for negative n.
func Factorial(n int) *big.Int {
	if n < 0 {
		return nil
	}
	return new(big.Int).MulRange(1, int64(n))
}

// DistinctCount returns the number of distinct arrangements of symbols:
// n! divided by k! for every symbol occurring k times. It matches the length
// of Recursive(symbols, true).
func DistinctCount[T comparable](symbols []T) *big.Int {
	multiplicity := make(map[T]int, len(symbols))
	for _, s := range symbols {
		multiplicity[s]++
	}

	count := Factorial(len(symbols))
	for _, k := range multiplicity {
		count.Quo(count, Factorial(k))
	}
	return count
}

func resultCapacity(n int) int {
	f := Factorial(n)
	if f == nil || !f.IsInt64() || f.Int64() > maxPreallocated {
		return 0
	}
	return int(f.Int64())
}
