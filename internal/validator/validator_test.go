package validator

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestResult_Severities(t *testing.T) {
	var r Result
	r.AddError("name-format", "name", "must be lowercase", "My-Skill")
	r.AddWarning("description-length", "description", "longer than recommended", nil)
	r.AddInfo("inventory", "", "3 scripts found", nil)

	if !r.HasErrors() {
		t.Error("HasErrors = false, want true")
	}
	if !r.HasWarnings() {
		t.Error("HasWarnings = false, want true")
	}
	if got := len(r.Errors()); got != 1 {
		t.Errorf("len(Errors()) = %d, want 1", got)
	}
	if got := len(r.Warnings()); got != 1 {
		t.Errorf("len(Warnings()) = %d, want 1", got)
	}
	if got := len(r.Infos()); got != 1 {
		t.Errorf("len(Infos()) = %d, want 1", got)
	}
}

func TestResult_NilSafe(t *testing.T) {
	var r *Result
	if r.HasErrors() || r.HasWarnings() {
		t.Error("nil result reported issues")
	}
	if r.Errors() != nil || r.Warnings() != nil || r.Infos() != nil {
		t.Error("nil result returned non-nil issue slices")
	}
}

func TestResult_Merge(t *testing.T) {
	a := &Result{Skill: "a"}
	a.AddError("x", "", "first", nil)
	b := &Result{Skill: "b"}
	b.AddWarning("y", "", "second", nil)

	a.Merge(b)
	a.Merge(nil)

	if len(a.Issues) != 2 {
		t.Fatalf("len(Issues) = %d, want 2", len(a.Issues))
	}
	if a.Issues[1].Message != "second" {
		t.Errorf("merged issue out of order: %+v", a.Issues)
	}
}

func TestIssue_Error(t *testing.T) {
	i := Issue{
		Severity: SeverityError,
		Field:    "name",
		Message:  "is required",
	}
	want := `error: field "name": is required`
	if got := i.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSeverity_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(SeverityWarning)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"warning"` {
		t.Errorf("marshal = %s, want \"warning\"", data)
	}
}

func TestReporter_JSON(t *testing.T) {
	r := &Result{Skill: "my-skill", Analyzer: "structure"}
	r.AddError("name-format", "name", "must be lowercase", "Bad")

	var buf bytes.Buffer
	if err := NewReporter(&buf, FormatJSON).Report(r); err != nil {
		t.Fatalf("Report: %v", err)
	}

	var got Result
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got.Skill != "my-skill" {
		t.Errorf("skill = %q, want my-skill", got.Skill)
	}
	if len(got.Issues) != 1 || got.Issues[0].Check != "name-format" {
		t.Errorf("issues = %+v", got.Issues)
	}
}

func TestReporter_TextClean(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var buf bytes.Buffer
	if err := NewReporter(&buf, FormatText).Report(&Result{Skill: "clean"}); err != nil {
		t.Fatalf("Report: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "No issues found") {
		t.Errorf("missing pass message: %q", out)
	}
}

func TestReporter_TextIssues(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	r := &Result{Skill: "broken"}
	r.AddError("name-format", "name", "must be lowercase", "Bad")
	r.AddWarning("line-count", "", "file longer than recommended", 612)

	var buf bytes.Buffer
	if err := NewReporter(&buf, FormatText).Report(r); err != nil {
		t.Fatalf("Report: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"1 error(s)",
		"1 warning(s)",
		"name: must be lowercase",
		"[Bad]",
		"(name-format)",
		"file longer than recommended",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
