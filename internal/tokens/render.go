package tokens

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Render writes the report as human-readable text.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "%s\n\n", color.New(color.Bold).Sprintf("Token Analysis: %s", r.Skill))

	fmt.Fprintln(w, "Description (always in context):")
	fmt.Fprintf(w, "   %d chars | %d words | ~%d tokens\n",
		r.Description.Chars, r.Description.Words, r.Description.Tokens)

	fmt.Fprintln(w, "\nSKILL.md body (loaded when triggered):")
	fmt.Fprintf(w, "   %d lines | %d words | ~%d tokens\n",
		r.Body.Lines, r.Body.Words, r.Body.Tokens)

	if len(r.References) > 0 {
		fmt.Fprintln(w, "\nReference files (loaded on demand):")
		for _, ref := range r.References {
			fmt.Fprintf(w, "   %s: %d words | ~%d tokens\n", ref.Name, ref.Words, ref.Tokens)
		}
	}

	fmt.Fprintln(w, "\nTotal SKILL.md:")
	fmt.Fprintf(w, "   %d chars | %d words | ~%d tokens\n",
		r.Total.Chars, r.Total.Words, r.Total.Tokens)

	fmt.Fprintln(w, "\nContext window impact:")

	if r.Description.Tokens > descriptionTokenLimit {
		fmt.Fprintln(w, color.YellowString("   description is ~%d tokens (recommend <%d)",
			r.Description.Tokens, descriptionTokenLimit))
	} else {
		fmt.Fprintln(w, color.GreenString("   description is efficient (~%d tokens)",
			r.Description.Tokens))
	}

	switch {
	case r.Body.Tokens > bodyHardThreshold:
		fmt.Fprintln(w, color.RedString("   body is ~%d tokens (too large, will impact context)",
			r.Body.Tokens))
	case r.Body.Tokens > bodySplitThreshold:
		fmt.Fprintln(w, color.YellowString("   body is ~%d tokens (consider splitting to references)",
			r.Body.Tokens))
	default:
		fmt.Fprintln(w, color.GreenString("   body size is reasonable (~%d tokens)",
			r.Body.Tokens))
	}

	fmt.Fprintln(w, "\nTarget guidelines:")
	fmt.Fprintln(w, "   Frequently-loaded skills: <200 words body")
	fmt.Fprintln(w, "   Standard skills: <500 words body")
	fmt.Fprintln(w, "   Reference files: unlimited (loaded on demand)")
}
