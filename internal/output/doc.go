// Package output renders permutation sets and user-facing warnings.
//
// A PermutationSet can be rendered as plain text (one arrangement per line
// under a summary header), JSON or YAML. Rendered output can be written to a
// file with WriteFile, which takes a cross-process lock and replaces the
// target atomically so readers never observe a partial result.
//
//	set := models.NewPermutationSet("ab", models.AlgorithmRecursive, true, perms)
//	if err := output.Render(os.Stdout, set, output.FormatText, false); err != nil {
//	    return err
//	}
package output
