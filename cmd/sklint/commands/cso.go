package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/sklint/internal/cso"
	"github.com/thoreinstein/sklint/internal/validator"
)

var csoJSON bool

func init() {
	csoCmd.Flags().BoolVar(&csoJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(csoCmd)
}

var csoCmd = &cobra.Command{
	Use:   "cso [path]",
	Short: "Check the description for search optimization problems",
	Long: `Checks the skill description for phrasing that prevents
auto-triggering: workflow hints, first-person voice, missing trigger
examples, and length problems. Descriptions should say WHAT the skill
does and WHEN to use it, never HOW it works.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sk, err := resolveSkill(cmd, args)
		if err != nil {
			return err
		}

		result := cso.New().Analyze(sk)

		reporter := validator.NewReporter(cmd.OutOrStdout(), reportFormat(csoJSON))
		if err := reporter.Report(result); err != nil {
			return err
		}
		return exitIfIssues(result)
	},
}
