package compat

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Render writes the report as human-readable text.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "%s\n\n", color.New(color.Bold).Sprintf("Platform Compatibility: %s", r.Skill))

	if r.CrossPlatform {
		fmt.Fprintln(w, color.GreenString("Fully cross-platform (Agent Skills standard only)"))
	} else {
		fmt.Fprintln(w, color.YellowString("Uses Claude Code extensions (gracefully degraded elsewhere)"))
	}

	fmt.Fprintln(w, "\nAgent Skills standard (cross-platform):")
	for _, f := range r.StandardFields {
		fmt.Fprintf(w, "   %s: %s\n", color.GreenString(f.Field), f.Note)
	}

	if len(r.ClaudeCodeFields) > 0 {
		fmt.Fprintln(w, "\nClaude Code extensions:")
		for _, f := range r.ClaudeCodeFields {
			fmt.Fprintf(w, "   %s: %s\n", color.CyanString(f.Field), f.Note)
		}
		if len(r.HooksDetected) > 0 {
			fmt.Fprintf(w, "\n   Hooks: %s\n", strings.Join(r.HooksDetected, ", "))
		}
		if len(r.UnknownHooks) > 0 {
			fmt.Fprintf(w, "   %s\n",
				color.YellowString("Unknown hook types: %s", strings.Join(r.UnknownHooks, ", ")))
		}
	}

	if len(r.UnknownFields) > 0 {
		fmt.Fprintln(w, "\nUnknown fields:")
		for _, f := range r.UnknownFields {
			fmt.Fprintf(w, "   %s\n", color.YellowString(f))
		}
	}

	if len(r.Recommendations) > 0 {
		fmt.Fprintln(w, "\nRecommendations:")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(w, "   - %s\n", rec)
		}
	}

	fmt.Fprintln(w, "\nPlatform support:")
	for _, p := range r.Platforms {
		status := color.GreenString("Full")
		if !p.Supported {
			status = color.YellowString("Core only")
		}
		fmt.Fprintf(w, "   %-20s %s\n", p.Name, status)
	}
}
