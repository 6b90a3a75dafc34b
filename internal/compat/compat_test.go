package compat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/thoreinstein/sklint/internal/skill"
)

func TestAnalyze_StandardOnly(t *testing.T) {
	sk := skill.Parse("/tmp/skills/portable/SKILL.md", `---
name: portable
description: Reviews changelog entries before release
license: MIT
---
body`)

	report := New().Analyze(sk)

	if !report.CrossPlatform {
		t.Error("CrossPlatform = false for standard-only skill")
	}
	if len(report.StandardFields) != 3 {
		t.Errorf("StandardFields = %+v, want 3 entries", report.StandardFields)
	}
	if len(report.ClaudeCodeFields) != 0 {
		t.Errorf("ClaudeCodeFields = %+v, want none", report.ClaudeCodeFields)
	}
	for _, p := range report.Platforms {
		if !p.Supported {
			t.Errorf("platform %s unsupported for standard-only skill", p.Name)
		}
	}
	if len(report.Recommendations) != 0 {
		t.Errorf("unexpected recommendations: %v", report.Recommendations)
	}
}

func TestAnalyze_ClaudeCodeExtensions(t *testing.T) {
	sk := skill.Parse("/tmp/skills/hooked/SKILL.md", `---
name: hooked
description: Validates tool output before it reaches the session
allowed-tools: Read, Grep
hooks:
  PreToolUse:
    - command: ./check.sh
  AfterLunch:
    - command: ./nap.sh
---
body`)

	report := New().Analyze(sk)

	if report.CrossPlatform {
		t.Error("CrossPlatform = true with extension fields")
	}
	if len(report.ClaudeCodeFields) != 2 {
		t.Errorf("ClaudeCodeFields = %+v, want 2 entries", report.ClaudeCodeFields)
	}
	if len(report.HooksDetected) != 2 {
		t.Fatalf("HooksDetected = %v, want 2", report.HooksDetected)
	}
	if report.HooksDetected[0] != "PreToolUse" {
		t.Errorf("HooksDetected[0] = %q", report.HooksDetected[0])
	}
	if len(report.UnknownHooks) != 1 || report.UnknownHooks[0] != "AfterLunch" {
		t.Errorf("UnknownHooks = %v, want [AfterLunch]", report.UnknownHooks)
	}

	var compatRec bool
	for _, rec := range report.Recommendations {
		if strings.Contains(rec, "compatibility") {
			compatRec = true
		}
	}
	if !compatRec {
		t.Errorf("missing compatibility recommendation: %v", report.Recommendations)
	}

	for _, p := range report.Platforms {
		want := p.Name == "Claude Code"
		if p.Supported != want {
			t.Errorf("platform %s supported = %v, want %v", p.Name, p.Supported, want)
		}
	}
}

func TestAnalyze_UnknownAndMissingFields(t *testing.T) {
	sk := skill.Parse("/tmp/skills/odd/SKILL.md", "---\ncolour: blue\n---\nbody")

	report := New().Analyze(sk)

	if len(report.UnknownFields) != 1 || report.UnknownFields[0] != "colour" {
		t.Errorf("UnknownFields = %v", report.UnknownFields)
	}

	var nameRec, descRec bool
	for _, rec := range report.Recommendations {
		if strings.Contains(rec, "name") {
			nameRec = true
		}
		if strings.Contains(rec, "description") {
			descRec = true
		}
	}
	if !nameRec || !descRec {
		t.Errorf("missing required-field recommendations: %v", report.Recommendations)
	}
}

func TestPreviewTruncation(t *testing.T) {
	sk := skill.Parse("/tmp/skills/long/SKILL.md",
		"---\ndescription: "+strings.Repeat("a", 80)+"\n---\n")

	report := New().Analyze(sk)

	if len(report.StandardFields) != 1 {
		t.Fatalf("StandardFields = %+v", report.StandardFields)
	}
	value := report.StandardFields[0].Value
	if len(value) != 53 || !strings.HasSuffix(value, "...") {
		t.Errorf("Value = %q, want 50 chars plus ellipsis", value)
	}
}

func TestRender(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	sk := skill.Parse("/tmp/skills/hooked/SKILL.md", `---
name: hooked
description: Validates tool output
hooks:
  PreToolUse:
    - command: ./check.sh
---
body`)

	var buf bytes.Buffer
	New().Analyze(sk).Render(&buf)

	out := buf.String()
	for _, want := range []string{
		"Platform Compatibility: hooked",
		"Claude Code extensions",
		"Hooks: PreToolUse",
		"Platform support:",
		"Core only",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
