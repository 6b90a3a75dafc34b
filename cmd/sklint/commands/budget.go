package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/sklint/internal/budget"
	"github.com/thoreinstein/sklint/internal/errors"
)

var (
	budgetJSON  bool
	budgetLimit int
)

func init() {
	budgetCmd.Flags().BoolVar(&budgetJSON, "json", false, "output as JSON")
	budgetCmd.Flags().IntVar(&budgetLimit, "budget", 0,
		"character budget (default from config, 15000)")
	rootCmd.AddCommand(budgetCmd)
}

var budgetCmd = &cobra.Command{
	Use:   "budget [dir]",
	Short: "Check combined description size against the character budget",
	Long: `Sums the description of every skill under a directory and checks
the total against Claude Code's character budget. All descriptions
are always loaded into context, so the total is what matters.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skills, err := scanSkills(cmd, args)
		if err != nil {
			return err
		}

		limit := budgetLimit
		if limit <= 0 && cfg != nil {
			limit = cfg.CharBudget
		}

		report := budget.New(limit).Analyze(skills)

		if budgetJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
		} else {
			report.Render(cmd.OutOrStdout())
		}

		if report.OverBudget {
			return errors.NewExitError(nil, errors.ExitUser)
		}
		return nil
	},
}
