package triggers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const barWidth = 20

// Render writes the report as human-readable text.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "%s\n\n", color.New(color.Bold).Sprintf("Trigger Analysis: %s", r.Skill))

	fmt.Fprintln(w, color.GreenString("Found triggers:"))
	for _, c := range r.Categories {
		if len(c.Found) == 0 {
			continue
		}
		shown := c.Found
		var more int
		if len(shown) > 8 {
			more = len(shown) - 8
			shown = shown[:8]
		}
		fmt.Fprintf(w, "   %s: %s\n", c.Name, strings.Join(shown, ", "))
		if more > 0 {
			fmt.Fprintf(w, "            ...and %d more\n", more)
		}
	}

	var anyMissing bool
	for _, c := range r.Categories {
		if len(c.Missing) > 0 {
			anyMissing = true
			break
		}
	}
	if anyMissing {
		fmt.Fprintf(w, "\n%s\n", color.YellowString("Consider adding:"))
		for _, c := range r.Categories {
			if len(c.Missing) > 0 {
				fmt.Fprintf(w, "   %s: %s\n", c.Name, strings.Join(c.Missing, ", "))
			}
		}
	}

	fmt.Fprintln(w, "\nCoverage:")
	for _, c := range r.Categories {
		fmt.Fprintf(w, "   %-15s [%s] %.0f%%\n", c.Name, bar(c.Coverage), c.Coverage*100)
	}

	if len(r.Suggestions) > 0 {
		fmt.Fprintln(w, "\nSuggestions:")
		for _, s := range r.Suggestions {
			fmt.Fprintf(w, "   - %s\n", s)
		}
	}
}

// bar renders a coverage ratio as a fixed-width block bar.
func bar(ratio float64) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * barWidth)
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
