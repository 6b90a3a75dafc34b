package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/sklint/internal/structure"
	"github.com/thoreinstein/sklint/internal/validator"
)

var structureJSON bool

func init() {
	structureCmd.Flags().BoolVar(&structureJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(structureCmd)
}

var structureCmd = &cobra.Command{
	Use:   "structure [path]",
	Short: "Validate SKILL.md structure and naming conventions",
	Long: `Validates the skill directory layout and the SKILL.md header:
required fields, name format, description limits, tabs, unknown
fields, file length, and the presence of a LICENSE file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sk, err := resolveSkill(cmd, args)
		if err != nil {
			return err
		}

		result := structure.New().Analyze(sk)

		reporter := validator.NewReporter(cmd.OutOrStdout(), reportFormat(structureJSON))
		if err := reporter.Report(result); err != nil {
			return err
		}
		return exitIfIssues(result)
	},
}
