package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/sklint/internal/compat"
)

var compatJSON bool

func init() {
	compatCmd.Flags().BoolVar(&compatJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(compatCmd)
}

var compatCmd = &cobra.Command{
	Use:   "compat [path]",
	Short: "Report cross-platform compatibility of header fields",
	Long: `Classifies header fields as Agent Skills standard (portable) or
Claude Code extensions (ignored elsewhere), lists the hooks in use,
and prints a platform support matrix.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sk, err := resolveSkill(cmd, args)
		if err != nil {
			return err
		}

		report := compat.New().Analyze(sk)

		if compatJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		report.Render(cmd.OutOrStdout())
		return nil
	},
}
