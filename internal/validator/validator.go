// Package validator provides the issue and result types shared by all
// sklint analyzers, plus reporters for rendering them.
package validator

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity represents the impact of an analyzer finding.
type Severity int

const (
	// SeverityError indicates a blocking problem with the skill.
	SeverityError Severity = iota
	// SeverityWarning indicates a recommended but non-blocking fix.
	SeverityWarning
	// SeverityInfo indicates an informational note.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the severity as its lowercase name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Issue represents a single analyzer finding.
type Issue struct {
	// Severity indicates the impact of the finding.
	Severity Severity `json:"severity"`
	// Check names the analyzer check that produced the finding,
	// e.g. "name-format" or "description-length".
	Check string `json:"check,omitempty"`
	// Field identifies the header field involved, when any.
	Field string `json:"field,omitempty"`
	// Message is a human-readable description of the problem.
	Message string `json:"message"`
	// Value is the offending value, when useful to show.
	Value any `json:"value,omitempty"`
	// Line is the 1-based line number in SKILL.md, when known.
	Line int `json:"line,omitempty"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Field != "" {
		sb.WriteString("field \"")
		sb.WriteString(i.Field)
		sb.WriteString("\": ")
	}
	sb.WriteString(i.Message)
	if i.Value != nil {
		fmt.Fprintf(&sb, " (got %v)", i.Value)
	}
	return sb.String()
}

// Result aggregates the findings for one skill.
type Result struct {
	// Skill is the skill name, or the directory name when the header
	// carries no name.
	Skill string `json:"skill,omitempty"`
	// Analyzer names the analyzer that produced the result.
	Analyzer string `json:"analyzer,omitempty"`
	// Issues holds the findings in the order they were produced.
	Issues []Issue `json:"issues"`
}

// HasErrors returns true if any issue has SeverityError.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings returns true if any issue has SeverityWarning.
func (r *Result) HasWarnings() bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// AddError adds an error finding for the named check.
func (r *Result) AddError(check, field, message string, value any) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityError,
		Check:    check,
		Field:    field,
		Message:  message,
		Value:    value,
	})
}

// AddWarning adds a warning finding for the named check.
func (r *Result) AddWarning(check, field, message string, value any) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityWarning,
		Check:    check,
		Field:    field,
		Message:  message,
		Value:    value,
	})
}

// AddInfo adds an informational finding for the named check.
func (r *Result) AddInfo(check, field, message string, value any) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityInfo,
		Check:    check,
		Field:    field,
		Message:  message,
		Value:    value,
	})
}

// Merge appends the issues of other into r.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
}

// Errors returns all findings with SeverityError.
func (r *Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns all findings with SeverityWarning.
func (r *Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

// Infos returns all findings with SeverityInfo.
func (r *Result) Infos() []Issue {
	return r.filter(SeverityInfo)
}

func (r *Result) filter(s Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			res = append(res, i)
		}
	}
	return res
}
