// Package permute enumerates the permutations of a sequence of symbols.
//
// Two generators are provided and agree on the multiset of arrangements they
// produce:
//
//   - GeneratePermutations walks positions with swap-and-restore
//     backtracking. When duplicate suppression is requested each arrangement
//     is emitted at most once, in first-occurrence order.
//   - GeneratePermutationsIterative runs Heap's algorithm. It always emits
//     exactly n! arrangements in the fixed order of its transposition
//     sequence, repeats included.
//
// The string entry points accept string, []rune and []byte input and treat
// each rune as one symbol. The generic forms (Recursive, Iterative) work on
// any element type, and Backtrack and Heap stream arrangements one at a time
// for callers that cannot hold n! results in memory.
//
// Invalid input is rejected before any work starts:
//
//	perms, err := permute.GeneratePermutations(42, true)
//	if errors.Is(err, permute.ErrInvalidType) {
//	    // not a string-like value
//	}
package permute
