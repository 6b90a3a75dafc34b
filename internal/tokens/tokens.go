// Package tokens estimates the context window cost of loading a skill.
package tokens

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/thoreinstein/sklint/internal/skill"
	"github.com/thoreinstein/sklint/pkg/fileutil"
)

// tokensPerWord is the rough token ratio for English prose. Code runs
// higher, around 1.5 to 2.
const tokensPerWord = 1.3

// Thresholds for context impact guidance.
const (
	// descriptionTokenLimit is the recommended ceiling for descriptions,
	// which are always in context.
	descriptionTokenLimit = 100

	// bodySplitThreshold is where a body should start moving material
	// into references/.
	bodySplitThreshold = 2000

	// bodyHardThreshold is where a body is large enough to hurt.
	bodyHardThreshold = 4000
)

// Estimate returns the rough token count for text.
func Estimate(text string) int {
	return int(float64(countWords(text)) * tokensPerWord)
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

// Section is the size of one piece of a skill.
type Section struct {
	Chars  int `json:"chars"`
	Words  int `json:"words"`
	Tokens int `json:"tokens"`
	Lines  int `json:"lines,omitempty"`
}

// Reference is the size of one on-demand reference file.
type Reference struct {
	Name   string `json:"name"`
	Words  int    `json:"words"`
	Tokens int    `json:"tokens"`
}

// Report is the token cost breakdown for one skill.
type Report struct {
	Skill       string      `json:"skill"`
	Description Section     `json:"description"`
	Body        Section     `json:"body"`
	Total       Section     `json:"total"`
	References  []Reference `json:"references,omitempty"`
}

// Analyzer estimates skill token costs.
type Analyzer struct{}

// New creates a tokens Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze measures the description, body, total, and reference files.
func (a *Analyzer) Analyze(s *skill.Skill) *Report {
	report := &Report{
		Skill:       s.Name,
		Description: measure(s.Description),
		Body:        measure(s.Body),
		Total:       measure(s.Raw),
	}
	report.Body.Lines = strings.Count(s.Body, "\n") + 1

	report.References = scanReferences(s.Dir)

	return report
}

// scanReferences measures references/*.md plus a root REFERENCES.md.
// Unreadable files are skipped.
func scanReferences(dir string) []Reference {
	var refs []Reference

	refsDir := filepath.Join(dir, "references")
	if entries, err := os.ReadDir(refsDir); err == nil {
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
				continue
			}
			names = append(names, entry.Name())
		}
		sort.Strings(names)
		for _, name := range names {
			data, err := fileutil.ReadFile(filepath.Join(refsDir, name))
			if err != nil {
				continue
			}
			refs = append(refs, Reference{
				Name:   name,
				Words:  countWords(string(data)),
				Tokens: Estimate(string(data)),
			})
		}
	}

	if data, err := fileutil.ReadFile(filepath.Join(dir, "REFERENCES.md")); err == nil {
		refs = append(refs, Reference{
			Name:   "REFERENCES.md",
			Words:  countWords(string(data)),
			Tokens: Estimate(string(data)),
		})
	}

	return refs
}

func measure(text string) Section {
	return Section{
		Chars:  len(text),
		Words:  countWords(text),
		Tokens: Estimate(text),
	}
}
