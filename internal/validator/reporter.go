package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/sklint/internal/errors"
)

// Format specifies the output format for analyzer reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes analyzer results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes a single result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}
	return r.ReportAll([]*Result{result})
}

// ReportAll writes the results for several skills to the output.
func (r *Reporter) ReportAll(results []*Result) error {
	switch r.format {
	case FormatJSON:
		return r.reportJSON(results)
	default:
		return r.reportText(results)
	}
}

func (r *Reporter) reportJSON(results []*Result) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	if len(results) == 1 {
		return errors.Wrap(encoder.Encode(results[0]), "encoding JSON report")
	}
	return errors.Wrap(encoder.Encode(results), "encoding JSON report")
}

func (r *Reporter) reportText(results []*Result) error {
	for n, result := range results {
		if n > 0 {
			fmt.Fprintln(r.out)
		}
		r.printResult(result)
	}
	return nil
}

func (r *Reporter) printResult(result *Result) {
	if result.Skill != "" {
		fmt.Fprintln(r.out, color.New(color.Bold).Sprint(result.Skill))
	}

	errs := result.Errors()
	warnings := result.Warnings()
	infos := result.Infos()

	if len(errs) == 0 && len(warnings) == 0 {
		fmt.Fprintln(r.out, color.GreenString("✓ No issues found"))
		for _, i := range infos {
			r.printIssue(i, color.FgCyan)
		}
		return
	}

	summary := []string{}
	if len(errs) > 0 {
		summary = append(summary, color.RedString("%d error(s)", len(errs)))
	}
	if len(warnings) > 0 {
		summary = append(summary, color.YellowString("%d warning(s)", len(warnings)))
	}
	fmt.Fprintf(r.out, "Found %s\n\n", strings.Join(summary, ", "))

	if len(errs) > 0 {
		fmt.Fprintln(r.out, "Errors:")
		for _, i := range errs {
			r.printIssue(i, color.FgRed)
		}
		fmt.Fprintln(r.out)
	}

	if len(warnings) > 0 {
		fmt.Fprintln(r.out, "Warnings:")
		for _, i := range warnings {
			r.printIssue(i, color.FgYellow)
		}
		fmt.Fprintln(r.out)
	}

	if len(infos) > 0 {
		fmt.Fprintln(r.out, "Notes:")
		for _, i := range infos {
			r.printIssue(i, color.FgCyan)
		}
		fmt.Fprintln(r.out)
	}
}

func (r *Reporter) printIssue(i Issue, c color.Attribute) {
	printer := color.New(c).SprintFunc()
	dim := color.New(color.FgHiBlack)

	var sb strings.Builder
	sb.WriteString("  • ")

	if i.Field != "" {
		sb.WriteString(printer(i.Field))
		sb.WriteString(": ")
	}

	sb.WriteString(i.Message)

	if i.Line > 0 {
		sb.WriteString(" ")
		sb.WriteString(dim.Sprintf("(line %d)", i.Line))
	}

	if i.Value != nil {
		valStr := fmt.Sprintf("%v", i.Value)
		if len(valStr) > 50 {
			valStr = valStr[:47] + "..."
		}
		sb.WriteString(" ")
		sb.WriteString(dim.Sprintf("[%s]", valStr))
	}

	if i.Check != "" {
		sb.WriteString(" ")
		sb.WriteString(dim.Sprintf("(%s)", i.Check))
	}

	fmt.Fprintln(r.out, sb.String())
}
