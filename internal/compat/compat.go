// Package compat reports which header fields are part of the Agent
// Skills standard and which are Claude Code extensions, and what that
// means for other platforms.
package compat

import (
	"encoding/json"

	"github.com/thoreinstein/sklint/internal/skill"
	"github.com/thoreinstein/sklint/pkg/frontmatter"
)

// standardFields are defined by the Agent Skills standard
// (agentskills.io) and work on every platform.
var standardFields = map[string]string{
	"name":          "Required - skill identifier",
	"description":   "Required - what it does and when to use",
	"license":       "Optional - license name or file reference",
	"compatibility": "Optional - environment requirements",
	"metadata":      "Optional - arbitrary key-value pairs",
}

// claudeCodeFields are Claude Code extensions, gracefully ignored by
// other platforms.
var claudeCodeFields = map[string]string{
	"allowed-tools": "Tool pre-authorization",
	"hooks":         "Event hooks (PreToolUse, PostToolUse, UserPromptSubmit, Stop)",
	"context":       "Execution context (fork for isolated subagent)",
}

// hookTypes are the event hooks Claude Code dispatches.
var hookTypes = []string{
	"PreToolUse", "PostToolUse", "UserPromptSubmit", "Stop",
	"Notification", "SessionStart", "SubagentStop",
}

// platforms lists the agent platforms in the support matrix. Only
// Claude Code understands the extension fields.
var platforms = []string{
	"Claude Code",
	"GitHub Copilot",
	"VS Code Copilot",
	"Cursor",
	"Codex CLI",
	"OpenCode",
	"Gemini CLI",
}

// valuePreview caps how much of a field value is shown.
const valuePreview = 50

// Field is one classified header field.
type Field struct {
	Field string `json:"field"`
	Value string `json:"value,omitempty"`
	Note  string `json:"note"`
}

// Platform is one row of the support matrix.
type Platform struct {
	Name      string `json:"name"`
	Supported bool   `json:"supported"`
}

// Report is the compatibility classification for one skill.
type Report struct {
	Skill            string     `json:"skill"`
	StandardFields   []Field    `json:"standard_fields"`
	ClaudeCodeFields []Field    `json:"claude_code_fields"`
	UnknownFields    []string   `json:"unknown_fields,omitempty"`
	HooksDetected    []string   `json:"hooks_detected,omitempty"`
	UnknownHooks     []string   `json:"unknown_hooks,omitempty"`
	CrossPlatform    bool       `json:"is_cross_platform"`
	Recommendations  []string   `json:"recommendations,omitempty"`
	Platforms        []Platform `json:"platforms"`
}

// Analyzer classifies header fields by portability.
type Analyzer struct{}

// New creates a compat Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze classifies every header field and builds the support matrix.
func (a *Analyzer) Analyze(s *skill.Skill) *Report {
	report := &Report{
		Skill:         s.Name,
		CrossPlatform: true,
	}

	for _, key := range s.Meta.Keys() {
		value, _ := s.Meta.Get(key)
		switch {
		case standardFields[key] != "":
			report.StandardFields = append(report.StandardFields, Field{
				Field: key,
				Value: preview(value),
				Note:  standardFields[key],
			})
		case claudeCodeFields[key] != "":
			report.ClaudeCodeFields = append(report.ClaudeCodeFields, Field{
				Field: key,
				Note:  claudeCodeFields[key],
			})
			report.CrossPlatform = false
			if hooks, ok := value.Mapping(); key == "hooks" && ok {
				a.inspectHooks(hooks, report)
			}
		default:
			report.UnknownFields = append(report.UnknownFields, key)
		}
	}

	if !s.Meta.Has("name") {
		report.Recommendations = append(report.Recommendations, "Add required field: name")
	}
	if !s.Meta.Has("description") {
		report.Recommendations = append(report.Recommendations, "Add required field: description")
	}
	if len(report.ClaudeCodeFields) > 0 && !s.Meta.Has("compatibility") {
		report.Recommendations = append(report.Recommendations,
			"Add 'compatibility' field to document platform differences")
	}

	for _, name := range platforms {
		report.Platforms = append(report.Platforms, Platform{
			Name:      name,
			Supported: name == "Claude Code" || report.CrossPlatform,
		})
	}

	return report
}

// inspectHooks records the hook event names used, flagging ones Claude
// Code does not dispatch.
func (a *Analyzer) inspectHooks(hooks *frontmatter.Mapping, report *Report) {
	for _, hook := range hooks.Keys() {
		report.HooksDetected = append(report.HooksDetected, hook)
		if !knownHook(hook) {
			report.UnknownHooks = append(report.UnknownHooks, hook)
		}
	}
}

func knownHook(name string) bool {
	for _, t := range hookTypes {
		if t == name {
			return true
		}
	}
	return false
}

// preview renders a field value truncated for display.
func preview(v frontmatter.Value) string {
	s := v.String()
	if v.Kind() != frontmatter.KindScalar {
		if data, err := json.Marshal(v); err == nil {
			s = string(data)
		}
	}
	if len(s) > valuePreview {
		return s[:valuePreview] + "..."
	}
	return s
}
