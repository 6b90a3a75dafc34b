package cso

import (
	"strings"
	"testing"

	"github.com/thoreinstein/sklint/internal/skill"
	"github.com/thoreinstein/sklint/internal/validator"
)

func analyze(desc string) *validator.Result {
	result := &validator.Result{}
	AnalyzeDescription(desc, result)
	return result
}

func hasCheck(issues []validator.Issue, check, substr string) bool {
	for _, i := range issues {
		if i.Check == check && strings.Contains(i.Message, substr) {
			return true
		}
	}
	return false
}

func TestAnalyzeDescription_Clean(t *testing.T) {
	result := analyze("Creates well-formatted git commits. Use when the user says 'commit this', 'save changes', or asks to commit work.")

	if result.HasErrors() {
		t.Errorf("unexpected errors: %+v", result.Errors())
	}
	if result.HasWarnings() {
		t.Errorf("unexpected warnings: %+v", result.Warnings())
	}
	for _, want := range []string{"capability statement", "use when", "user actions", "example phrases"} {
		if !hasCheck(result.Infos(), "good-pattern", want) {
			t.Errorf("missing good pattern %q: %+v", want, result.Infos())
		}
	}
}

func TestAnalyzeDescription_WorkflowHints(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want string
	}{
		{"execute", "Executes the deployment pipeline for the project", "execute"},
		{"run commands", "Runs shell commands to fetch issue status", "running commands"},
		{"workflow", "Automates the release workflow for maintainers", "workflow"},
		{"parse", "Parses configuration files before deploys", "parse"},
		{"steps", "Step 1 fetches data, step 2 formats it for review", "references steps"},
		{"first then", "First gathers context, then produces the report", "sequential"},
		{"by running", "Fetches results by running the test suite", "how it works"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyze(tt.desc)
			if !hasCheck(result.Errors(), "workflow-hint", tt.want) {
				t.Errorf("missing workflow hint %q: %+v", tt.want, result.Issues)
			}
		})
	}
}

func TestAnalyzeDescription_FirstPerson(t *testing.T) {
	result := analyze("I can help with writing release notes for your project team")
	if !hasCheck(result.Errors(), "first-person", `"I"`) {
		t.Errorf("missing first person finding: %+v", result.Issues)
	}
}

func TestAnalyzeDescription_TooShort(t *testing.T) {
	result := analyze("Does git stuff")
	if !hasCheck(result.Warnings(), "description-length", "too short") {
		t.Errorf("missing short warning: %+v", result.Warnings())
	}
}

func TestAnalyzeDescription_TooLong(t *testing.T) {
	result := analyze("Formats code. " + strings.Repeat("x", 1100))
	if !hasCheck(result.Errors(), "description-length", "max") {
		t.Errorf("missing length error: %+v", result.Errors())
	}

	result = analyze("Formats code. " + strings.Repeat("x", 600))
	if !hasCheck(result.Warnings(), "description-length", "recommend") {
		t.Errorf("missing length warning: %+v", result.Warnings())
	}
}

func TestAnalyzeDescription_MissingTriggerExamples(t *testing.T) {
	result := analyze("Reviews pull requests for common mistakes and style problems in Go code")
	if !hasCheck(result.Warnings(), "trigger-examples", "quotes") {
		t.Errorf("missing trigger examples warning: %+v", result.Warnings())
	}
}

func TestAnalyze_NoDescription(t *testing.T) {
	sk := skill.Parse("/tmp/skills/bare/SKILL.md", "---\nname: bare\n---\nbody")
	result := New().Analyze(sk)
	if !hasCheck(result.Errors(), "description", "no description") {
		t.Errorf("missing description error: %+v", result.Issues)
	}
}
