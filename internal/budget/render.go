package budget

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// maxBarWidth caps the breakdown bar length.
const maxBarWidth = 50

// charsPerBarCell is how many description characters one bar cell stands for.
const charsPerBarCell = 20

// Render writes the report as human-readable text.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "%s\n\n", color.New(color.Bold).Sprint("Character Budget Analysis"))

	status := color.GreenString("within budget")
	if r.OverBudget {
		status = color.RedString("OVER BUDGET")
	}
	fmt.Fprintf(w, "Status: %s\n", status)
	fmt.Fprintf(w, "Skills found: %d\n", r.SkillCount)
	fmt.Fprintf(w, "Total characters: %d / %d\n", r.Total, r.Budget)
	fmt.Fprintf(w, "Remaining: %d characters\n", r.Remaining)
	fmt.Fprintf(w, "Usage: %.1f%%\n", r.PercentUsed)

	if r.NearLimit() && !r.OverBudget {
		fmt.Fprintf(w, "\n%s\n", color.YellowString("Above 80%% usage, consider shortening descriptions"))
	}

	fmt.Fprintln(w, "\nBreakdown by skill:")
	for _, e := range r.Breakdown {
		cells := e.Chars / charsPerBarCell
		if cells > maxBarWidth {
			cells = maxBarWidth
		}
		fmt.Fprintf(w, "   %-30s %5d chars  %s\n", e.Name, e.Chars, strings.Repeat("█", cells))
	}

	if r.OverBudget {
		fmt.Fprintln(w, "\nRecommendations:")
		fmt.Fprintln(w, "   1. Shorten descriptions, focus on triggers over workflow")
		fmt.Fprintln(w, "   2. Remove less-used skills")
		fmt.Fprintln(w, "   3. Set SLASH_COMMAND_TOOL_CHAR_BUDGET=30000 for more headroom")
		if len(r.Breakdown) > 0 {
			top := r.Breakdown[0]
			fmt.Fprintf(w, "   4. Biggest skill: %s (%d chars)\n", top.Name, top.Chars)
		}
	}
}
