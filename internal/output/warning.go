package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string // Main warning title
	Message    string // Detailed explanation (optional)
	Suggestion string // Action to take (optional)
}

// Display writes the warning to out, in yellow when colorOutput is set
func (w Warning) Display(out io.Writer, colorOutput bool) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if colorOutput {
		fmt.Fprint(out, color.New(color.FgYellow).Sprint(b.String()))
		return
	}
	fmt.Fprint(out, b.String())
}

// WarnRepeatedSymbols creates a warning for input whose repeated symbols will
// produce repeated arrangements.
func WarnRepeatedSymbols(input string, algorithm string) Warning {
	return Warning{
		Title:      fmt.Sprintf("input %q repeats symbols", input),
		Message:    fmt.Sprintf("The %s generator will emit identical arrangements more than once", algorithm),
		Suggestion: "Use --algorithm recursive without --allow-duplicates to list each arrangement once",
	}
}
