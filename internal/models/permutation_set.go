package models

import (
	"time"

	"github.com/google/uuid"
)

// PermutationSet is the outcome of one generator run, in generation order.
type PermutationSet struct {
	RunID             string    `json:"run_id" yaml:"run_id"`
	Input             string    `json:"input" yaml:"input"`
	Algorithm         Algorithm `json:"algorithm" yaml:"algorithm"`
	ExcludeDuplicates bool      `json:"exclude_duplicates" yaml:"exclude_duplicates"`
	Count             int       `json:"count" yaml:"count"`
	Permutations      []string  `json:"permutations" yaml:"permutations"`
	GeneratedAt       time.Time `json:"generated_at" yaml:"generated_at"`
}

// NewPermutationSet wraps generator output with a fresh run ID and timestamp.
// ExcludeDuplicates is recorded as false for algorithms that cannot suppress
// duplicates, so the set always describes what was actually produced.
func NewPermutationSet(input string, algorithm Algorithm, excludeDuplicates bool, perms []string) *PermutationSet {
	if perms == nil {
		perms = []string{}
	}
	return &PermutationSet{
		RunID:             uuid.New().String(),
		Input:             input,
		Algorithm:         algorithm,
		ExcludeDuplicates: excludeDuplicates && algorithm.SuppressesDuplicates(),
		Count:             len(perms),
		Permutations:      perms,
		GeneratedAt:       time.Now().UTC(),
	}
}

// Repeats returns how many entries duplicate an earlier entry.
func (s *PermutationSet) Repeats() int {
	seen := make(map[string]struct{}, len(s.Permutations))
	for _, p := range s.Permutations {
		seen[p] = struct{}{}
	}
	return len(s.Permutations) - len(seen)
}
