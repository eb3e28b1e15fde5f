package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/permgen/internal/models"
	"gopkg.in/yaml.v3"
)

// Supported render formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Render writes set to w in the given format.
// colorOutput only affects the text header.
func Render(w io.Writer, set *models.PermutationSet, format string, colorOutput bool) error {
	if set == nil {
		return fmt.Errorf("nothing to render")
	}

	data, err := Marshal(set, format, colorOutput)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Marshal encodes set in the given format.
func Marshal(set *models.PermutationSet, format string, colorOutput bool) ([]byte, error) {
	switch format {
	case FormatText, "":
		return []byte(formatText(set, colorOutput)), nil
	case FormatJSON:
		data, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(set)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// formatText renders a summary header followed by one arrangement per line:
//
//	Permutations of "aab" (recursive, excluding duplicates): 3
//	aab
//	aba
//	baa
func formatText(set *models.PermutationSet, colorOutput bool) string {
	mode := "keeping duplicates"
	if set.ExcludeDuplicates {
		mode = "excluding duplicates"
	}

	count := fmt.Sprintf("%d", set.Count)
	if colorOutput {
		count = color.New(color.FgGreen, color.Bold).Sprint(count)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Permutations of %q (%s, %s): %s\n", set.Input, set.Algorithm, mode, count)
	for _, p := range set.Permutations {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderCount writes the total and distinct arrangement counts for input.
func RenderCount(w io.Writer, input string, total, distinct fmt.Stringer, colorOutput bool) error {
	cyan := color.New(color.FgCyan)
	label := func(s string) string {
		if colorOutput {
			return cyan.Sprint(s)
		}
		return s
	}

	_, err := fmt.Fprintf(w, "%s: %q\n%s: %s\n%s: %s\n",
		label("input"), input,
		label("total"), total,
		label("distinct"), distinct)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
