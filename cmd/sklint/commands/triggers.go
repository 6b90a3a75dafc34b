package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/sklint/internal/triggers"
)

var triggersJSON bool

func init() {
	triggersCmd.Flags().BoolVar(&triggersJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(triggersCmd)
}

var triggersCmd = &cobra.Command{
	Use:   "triggers [path]",
	Short: "Measure trigger word coverage in the description",
	Long: `Measures how many common trigger words the skill description
covers: action verbs, question phrases, and the vocabulary of any
domain the description already touches. Suggests terms to add.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sk, err := resolveSkill(cmd, args)
		if err != nil {
			return err
		}

		report := triggers.New().Analyze(sk)

		if triggersJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		report.Render(cmd.OutOrStdout())
		return nil
	},
}
