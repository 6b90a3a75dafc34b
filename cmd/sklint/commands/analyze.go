package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/sklint/internal/compat"
	"github.com/thoreinstein/sklint/internal/cso"
	"github.com/thoreinstein/sklint/internal/structure"
	"github.com/thoreinstein/sklint/internal/tokens"
	"github.com/thoreinstein/sklint/internal/triggers"
	"github.com/thoreinstein/sklint/internal/validator"
)

var analyzeJSON bool

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

// fullReport bundles every analyzer's output for one skill.
type fullReport struct {
	Skill     string            `json:"skill"`
	Structure *validator.Result `json:"structure"`
	CSO       *validator.Result `json:"cso"`
	Triggers  *triggers.Report  `json:"triggers"`
	Tokens    *tokens.Report    `json:"tokens"`
	Compat    *compat.Report    `json:"compat"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Run every analyzer on a skill",
	Long: `Runs the structure, cso, triggers, tokens, and compat analyzers on
one skill and prints a combined report. With no path argument the
configured skills directory is scanned and a skill picked
interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sk, err := resolveSkill(cmd, args)
		if err != nil {
			return err
		}

		report := &fullReport{
			Skill:     sk.Name,
			Structure: structure.New().Analyze(sk),
			CSO:       cso.New().Analyze(sk),
			Triggers:  triggers.New().Analyze(sk),
			Tokens:    tokens.New().Analyze(sk),
			Compat:    compat.New().Analyze(sk),
		}

		out := cmd.OutOrStdout()

		if analyzeJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
			return exitIfIssues(report.Structure, report.CSO)
		}

		reporter := validator.NewReporter(out, validator.FormatText)
		if err := reporter.ReportAll([]*validator.Result{report.Structure, report.CSO}); err != nil {
			return err
		}

		fmt.Fprintln(out)
		report.Triggers.Render(out)
		fmt.Fprintln(out)
		report.Tokens.Render(out)
		fmt.Fprintln(out)
		report.Compat.Render(out)

		return exitIfIssues(report.Structure, report.CSO)
	},
}
