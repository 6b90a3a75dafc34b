package triggers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func category(r *Report, name string) *Category {
	for i := range r.Categories {
		if r.Categories[i].Name == name {
			return &r.Categories[i]
		}
	}
	return nil
}

func TestAnalyze_GithubSkill(t *testing.T) {
	report := analyzeDescription("gh-helper",
		"Lists and creates GitHub issues. Use when the user asks to show a repo, check a pull request, or search issues.")

	actions := category(report, "actions")
	if actions == nil {
		t.Fatal("missing actions category")
	}
	for _, want := range []string{"show", "list", "create", "check", "search"} {
		if !contains(actions.Found, want) {
			t.Errorf("actions missing %q: %v", want, actions.Found)
		}
	}
	if actions.Coverage <= 0.1 {
		t.Errorf("actions coverage = %f, want > 0.1", actions.Coverage)
	}

	gh := category(report, "github")
	if gh == nil {
		t.Fatal("github domain not detected")
	}
	for _, want := range []string{"github", "repo", "issue", "pull request"} {
		if !contains(gh.Found, want) {
			t.Errorf("github terms missing %q: %v", want, gh.Found)
		}
	}
	if len(gh.Missing) > 5 {
		t.Errorf("missing list too long: %v", gh.Missing)
	}

	// No database vocabulary, so the domain is not reported.
	if category(report, "database") != nil {
		t.Error("database domain reported without any matching term")
	}
}

func TestAnalyze_Suggestions(t *testing.T) {
	report := analyzeDescription("vague", "Assists with various everyday programming problems")

	var actionSuggestion, questionSuggestion, quoteSuggestion bool
	for _, s := range report.Suggestions {
		switch {
		case strings.Contains(s, "action verbs"):
			actionSuggestion = true
		case strings.Contains(s, "question phrases"):
			questionSuggestion = true
		case strings.Contains(s, "quoted example"):
			quoteSuggestion = true
		}
	}
	if !actionSuggestion || !questionSuggestion || !quoteSuggestion {
		t.Errorf("suggestions = %v, want all three", report.Suggestions)
	}
}

func TestAnalyze_QuestionCoverage(t *testing.T) {
	report := analyzeDescription("q",
		"Explains what is happening in CI failures. Use when the user asks 'how do I fix this', 'what is wrong'.")

	questions := category(report, "questions")
	if questions == nil || len(questions.Found) == 0 {
		t.Fatalf("question triggers not found: %+v", report.Categories)
	}
	for _, s := range report.Suggestions {
		if strings.Contains(s, "question phrases") {
			t.Errorf("question suggestion raised despite coverage: %v", report.Suggestions)
		}
		if strings.Contains(s, "quoted example") {
			t.Errorf("quote suggestion raised despite examples: %v", report.Suggestions)
		}
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{0, strings.Repeat("░", 20)},
		{1, strings.Repeat("█", 20)},
		{0.5, strings.Repeat("█", 10) + strings.Repeat("░", 10)},
		{1.5, strings.Repeat("█", 20)},
	}
	for _, tt := range tests {
		if got := bar(tt.ratio); got != tt.want {
			t.Errorf("bar(%f) = %q, want %q", tt.ratio, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	report := analyzeDescription("gh-helper",
		"Lists GitHub issues. Use when the user asks to show a repo or check a pull request.")

	var buf bytes.Buffer
	report.Render(&buf)

	out := buf.String()
	for _, want := range []string{
		"Trigger Analysis: gh-helper",
		"Found triggers:",
		"Coverage:",
		"actions",
		"github",
		"%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
