// Package prompt provides interactive skill selection.
package prompt

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/sklint/internal/errors"
	"github.com/thoreinstein/sklint/internal/skill"
)

// Sentinel errors for skill selection.
var (
	ErrNoSkills  = errors.New("no skills to select from")
	ErrCancelled = errors.New("selection cancelled")
)

// PickSkill opens a fuzzy finder over skills and returns the selection.
// A single skill is returned without prompting. Returns ErrCancelled
// when the user aborts.
func PickSkill(skills []*skill.Skill) (*skill.Skill, error) {
	if len(skills) == 0 {
		return nil, ErrNoSkills
	}
	if len(skills) == 1 {
		return skills[0], nil
	}

	idx, err := fuzzyfinder.Find(
		skills,
		func(i int) string {
			return fmt.Sprintf("%s (%d lines)", skills[i].Name, skills[i].Lines)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			s := skills[i]
			return fmt.Sprintf("Name: %s\nPath: %s\nLines: %d\n\nDescription:\n%s",
				s.Name,
				s.Dir,
				s.Lines,
				s.Description,
			)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, ErrCancelled
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	return skills[idx], nil
}
