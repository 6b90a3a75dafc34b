package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/sklint/internal/tokens"
)

var tokensJSON bool

func init() {
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(tokensCmd)
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [path]",
	Short: "Estimate the context window cost of a skill",
	Long: `Estimates token usage for the description (always in context),
the SKILL.md body (loaded when the skill triggers), and any reference
files (loaded on demand).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sk, err := resolveSkill(cmd, args)
		if err != nil {
			return err
		}

		report := tokens.New().Analyze(sk)

		if tokensJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		report.Render(cmd.OutOrStdout())
		return nil
	},
}
