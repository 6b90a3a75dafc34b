// Package budget checks combined skill description size against the
// Claude Code character budget. Every description is always loaded into
// context, so their total is capped.
package budget

import (
	"sort"

	"github.com/thoreinstein/sklint/internal/skill"
)

// DefaultCharBudget is Claude Code's default character budget for all
// skill descriptions combined.
const DefaultCharBudget = 15000

// warnPercent is the usage percentage above which a warning is shown.
const warnPercent = 80

// Entry is one skill's share of the budget.
type Entry struct {
	Name  string `json:"name"`
	Chars int    `json:"chars"`
	Path  string `json:"path"`
}

// Report is the budget usage across a skills directory.
type Report struct {
	Total       int     `json:"total"`
	Budget      int     `json:"budget"`
	Remaining   int     `json:"remaining"`
	PercentUsed float64 `json:"percent_used"`
	OverBudget  bool    `json:"over_budget"`
	SkillCount  int     `json:"skill_count"`
	// Breakdown lists skills largest first.
	Breakdown []Entry `json:"breakdown"`
}

// Analyzer checks description budgets.
type Analyzer struct {
	budget int
}

// New creates a budget Analyzer. A non-positive budget falls back to
// DefaultCharBudget.
func New(budget int) *Analyzer {
	if budget <= 0 {
		budget = DefaultCharBudget
	}
	return &Analyzer{budget: budget}
}

// Analyze sums description sizes across skills.
func (a *Analyzer) Analyze(skills []*skill.Skill) *Report {
	report := &Report{
		Budget:     a.budget,
		SkillCount: len(skills),
		Breakdown:  make([]Entry, 0, len(skills)),
	}

	for _, s := range skills {
		report.Total += len(s.Description)
		report.Breakdown = append(report.Breakdown, Entry{
			Name:  s.Name,
			Chars: len(s.Description),
			Path:  s.Dir,
		})
	}

	sort.SliceStable(report.Breakdown, func(i, j int) bool {
		return report.Breakdown[i].Chars > report.Breakdown[j].Chars
	})

	report.Remaining = report.Budget - report.Total
	report.PercentUsed = float64(report.Total) / float64(report.Budget) * 100
	report.OverBudget = report.Total > report.Budget

	return report
}

// NearLimit reports whether usage is above the warning threshold.
func (r *Report) NearLimit() bool {
	return r.PercentUsed > warnPercent
}
