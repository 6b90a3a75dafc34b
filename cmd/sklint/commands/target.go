package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/sklint/internal/cli/prompt"
	"github.com/thoreinstein/sklint/internal/errors"
	"github.com/thoreinstein/sklint/internal/logging"
	"github.com/thoreinstein/sklint/internal/paths"
	"github.com/thoreinstein/sklint/internal/skill"
	"github.com/thoreinstein/sklint/internal/validator"
)

// skillsDir returns the configured skills directory.
func skillsDir() string {
	if cfg != nil && cfg.SkillsDir != "" {
		return cfg.SkillsDir
	}
	return paths.DefaultSkillsDir()
}

// resolveSkill loads the skill named by args. With no argument it scans
// the skills directory and prompts for a pick.
func resolveSkill(cmd *cobra.Command, args []string) (*skill.Skill, error) {
	if len(args) > 0 {
		return skill.Load(args[0])
	}

	scanner := skill.NewScannerWithLogger(logging.FromContext(cmd.Context()))
	skills, err := scanner.Scan(skillsDir())
	if err != nil {
		return nil, err
	}

	sk, err := prompt.PickSkill(skills)
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			return nil, errors.NewExitError(nil, errors.ExitSuccess)
		}
		return nil, err
	}
	return sk, nil
}

// scanSkills loads every skill under the directory named by args, or
// the configured skills directory.
func scanSkills(cmd *cobra.Command, args []string) ([]*skill.Skill, error) {
	dir := skillsDir()
	if len(args) > 0 {
		dir = args[0]
	}
	scanner := skill.NewScannerWithLogger(logging.FromContext(cmd.Context()))
	return scanner.Scan(dir)
}

// reportFormat maps the --json flag and config output to a reporter format.
func reportFormat(jsonFlag bool) validator.Format {
	if jsonFlag {
		return validator.FormatJSON
	}
	if cfg != nil && cfg.Output == "json" {
		return validator.FormatJSON
	}
	return validator.FormatText
}

// strictMode reports whether warnings should fail the command.
func strictMode() bool {
	return cfg != nil && cfg.Strict
}

// exitIfIssues converts analyzer findings into a non-zero exit.
func exitIfIssues(results ...*validator.Result) error {
	for _, r := range results {
		if r.HasErrors() || (strictMode() && r.HasWarnings()) {
			return errors.NewExitError(nil, errors.ExitUser)
		}
	}
	return nil
}
