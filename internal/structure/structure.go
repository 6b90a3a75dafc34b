// Package structure validates SKILL.md layout, header fields, and
// naming conventions.
package structure

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/thoreinstein/sklint/internal/skill"
	"github.com/thoreinstein/sklint/internal/validator"
)

const (
	// maxNameLength is the maximum allowed length for skill names.
	maxNameLength = 64

	// maxDescriptionLength is the hard limit for descriptions.
	maxDescriptionLength = 1024

	// recommendedDescriptionLength is the soft limit for descriptions.
	recommendedDescriptionLength = 500

	// recommendedLineCount is the soft limit for SKILL.md length.
	// Longer material belongs in references/.
	recommendedLineCount = 500
)

// nameRegex validates skill names: start with a letter, then lowercase
// letters, digits, and hyphens.
var nameRegex = regexp.MustCompile(`^[a-z][a-z0-9\-]*$`)

// knownFields are the header fields defined by the Agent Skills
// Specification plus the Claude Code extensions.
var knownFields = map[string]bool{
	"name":          true,
	"description":   true,
	"license":       true,
	"compatibility": true,
	"metadata":      true,
	"allowed-tools": true,
	"hooks":         true,
	"context":       true,
}

// Analyzer validates skill structure.
type Analyzer struct{}

// New creates a structure Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze checks the skill header and directory layout.
func (a *Analyzer) Analyze(s *skill.Skill) *validator.Result {
	result := &validator.Result{Skill: s.Name, Analyzer: "structure"}

	a.checkHeader(s, result)
	a.checkDirectory(s, result)

	return result
}

// checkHeader validates the frontmatter header block and its fields.
func (a *Analyzer) checkHeader(s *skill.Skill, result *validator.Result) {
	if !strings.HasPrefix(s.Raw, "---") {
		result.AddError("frontmatter", "", "file must start with --- (YAML frontmatter)", nil)
		return
	}
	if !s.HasHeader() {
		result.AddError("frontmatter", "", "missing closing --- for frontmatter", nil)
		return
	}

	if strings.Contains(s.Header, "\t") {
		result.AddError("frontmatter-tabs", "", "YAML contains tabs (use spaces only)", nil)
	}

	if s.Meta.Len() == 0 {
		result.AddError("frontmatter", "", "frontmatter must be a YAML mapping", nil)
		return
	}

	if !s.Meta.Has("name") {
		result.AddError("required-field", "name", "missing required field", nil)
	} else {
		a.checkName(s.Meta.GetString("name"), result)
	}

	if !s.Meta.Has("description") {
		result.AddError("required-field", "description", "missing required field", nil)
	} else {
		a.checkDescription(s.Meta.GetString("description"), result)
	}

	for _, field := range s.Meta.Keys() {
		if !knownFields[field] {
			result.AddWarning("unknown-field", field, "unknown field", nil)
		}
	}
}

// checkName validates the name field against naming conventions.
func (a *Analyzer) checkName(name string, result *validator.Result) {
	if name == "" {
		result.AddError("required-field", "name", "missing required field", nil)
		return
	}

	if len(name) > maxNameLength {
		result.AddError("name-length", "name",
			fmt.Sprintf("too long: %d chars (max %d)", len(name), maxNameLength), name)
	}
	if name != strings.ToLower(name) {
		result.AddError("name-case", "name", "must be lowercase", name)
	}
	if strings.Contains(name, "_") {
		result.AddError("name-format", "name", "use hyphens, not underscores", name)
	}
	if strings.Contains(name, " ") {
		result.AddError("name-format", "name", "no spaces allowed", name)
	}
	if !nameRegex.MatchString(name) {
		result.AddError("name-format", "name",
			"must start with a letter and contain only lowercase letters, numbers, and hyphens", name)
	}
}

// checkDescription validates the description length limits.
func (a *Analyzer) checkDescription(desc string, result *validator.Result) {
	switch {
	case len(desc) > maxDescriptionLength:
		result.AddError("description-length", "description",
			fmt.Sprintf("too long: %d chars (max %d)", len(desc), maxDescriptionLength), nil)
	case len(desc) > recommendedDescriptionLength:
		result.AddWarning("description-length", "description",
			fmt.Sprintf("%d chars (recommend <%d)", len(desc), recommendedDescriptionLength), nil)
	}
}

// checkDirectory validates the skill directory layout around SKILL.md.
func (a *Analyzer) checkDirectory(s *skill.Skill, result *validator.Result) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		result.AddWarning("directory", "", "could not read skill directory", err.Error())
		return
	}

	var hasUpper, hasLowerVariant, hasLicense bool
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch {
		case name == "SKILL.md":
			hasUpper = true
		case strings.EqualFold(name, "SKILL.md"):
			hasLowerVariant = true
		case name == "LICENSE":
			hasLicense = true
		}
	}

	if !hasUpper && hasLowerVariant {
		result.AddError("skill-file-case", "", "SKILL.md must be uppercase (case-sensitive)", nil)
	}
	if !hasLicense {
		result.AddWarning("license-file", "", "no LICENSE file found", nil)
	}

	if s.Lines > recommendedLineCount {
		result.AddWarning("line-count", "",
			fmt.Sprintf("SKILL.md is %d lines (recommend <%d, use references/)", s.Lines, recommendedLineCount), nil)
	}
	result.AddInfo("line-count", "", fmt.Sprintf("SKILL.md: %d lines", s.Lines), nil)

	for _, sub := range []string{"scripts", "references"} {
		files, err := os.ReadDir(filepath.Join(s.Dir, sub))
		if err != nil {
			continue
		}
		result.AddInfo("inventory", "", fmt.Sprintf("%s/: %d files", sub, len(files)), nil)
	}
}
