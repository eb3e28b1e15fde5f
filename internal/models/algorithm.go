package models

import (
	"fmt"
	"strings"
)

// Algorithm names a permutation generator.
type Algorithm string

// Supported generators
const (
	AlgorithmRecursive Algorithm = "recursive" // swap-and-restore backtracking
	AlgorithmIterative Algorithm = "iterative" // Heap's algorithm
)

// Algorithms lists every supported generator in display order.
var Algorithms = []Algorithm{AlgorithmRecursive, AlgorithmIterative}

// ParseAlgorithm converts a case-insensitive name into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, a := range Algorithms {
		if a == normalized {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown algorithm %q, must be one of: %s", name, AlgorithmNames())
}

// AlgorithmNames returns the supported algorithm names joined by ", ".
func AlgorithmNames() string {
	names := make([]string, len(Algorithms))
	for i, a := range Algorithms {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}

// String returns the algorithm name.
func (a Algorithm) String() string {
	return string(a)
}

// SuppressesDuplicates reports whether the algorithm can honour duplicate
// suppression. Heap's algorithm always emits every n! slot.
func (a Algorithm) SuppressesDuplicates() bool {
	return a == AlgorithmRecursive
}
