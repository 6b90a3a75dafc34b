package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/sklint/internal/errors"
	"github.com/thoreinstein/sklint/internal/export"
	"github.com/thoreinstein/sklint/pkg/fileutil"
)

var (
	fmFormat string
	fmOutput string
)

func init() {
	fmCmd.Flags().StringVarP(&fmFormat, "format", "f", "json",
		"output format: json, yaml, toml")
	fmCmd.Flags().StringVarP(&fmOutput, "output", "o", "",
		"write to file instead of stdout")
	rootCmd.AddCommand(fmCmd)
}

var fmCmd = &cobra.Command{
	Use:   "fm [path]",
	Short: "Dump parsed frontmatter",
	Long: `Parses the SKILL.md header and prints it in an interchange
format. JSON and YAML output preserve the header's key order; TOML
does not. Malformed header lines are skipped, never fatal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sk, err := resolveSkill(cmd, args)
		if err != nil {
			return err
		}

		format, err := export.ParseFormat(fmFormat)
		if err != nil {
			return errors.NewUserError(err, "use --format json, yaml, or toml")
		}

		data, err := export.Marshal(sk.Meta, format)
		if err != nil {
			return err
		}

		if fmOutput != "" {
			if err := fileutil.AtomicWriteFile(fmOutput, data, 0); err != nil {
				return errors.NewSystemError(err, "check the output path is writable")
			}
			return nil
		}

		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
