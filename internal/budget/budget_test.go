package budget

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/thoreinstein/sklint/internal/skill"
)

func fakeSkill(name string, descLen int) *skill.Skill {
	content := "---\nname: " + name + "\ndescription: " + strings.Repeat("x", descLen) + "\n---\n"
	return skill.Parse("/tmp/skills/"+name+"/SKILL.md", content)
}

func TestAnalyze(t *testing.T) {
	skills := []*skill.Skill{
		fakeSkill("small", 100),
		fakeSkill("large", 400),
		fakeSkill("medium", 200),
	}

	report := New(1000).Analyze(skills)

	if report.Total != 700 {
		t.Errorf("Total = %d, want 700", report.Total)
	}
	if report.Remaining != 300 {
		t.Errorf("Remaining = %d, want 300", report.Remaining)
	}
	if report.PercentUsed != 70 {
		t.Errorf("PercentUsed = %f, want 70", report.PercentUsed)
	}
	if report.OverBudget {
		t.Error("OverBudget = true within budget")
	}
	if report.SkillCount != 3 {
		t.Errorf("SkillCount = %d, want 3", report.SkillCount)
	}

	want := []string{"large", "medium", "small"}
	for i, name := range want {
		if report.Breakdown[i].Name != name {
			t.Errorf("Breakdown[%d] = %q, want %q", i, report.Breakdown[i].Name, name)
		}
	}
}

func TestAnalyze_OverBudget(t *testing.T) {
	report := New(500).Analyze([]*skill.Skill{fakeSkill("big", 600)})

	if !report.OverBudget {
		t.Error("OverBudget = false, want true")
	}
	if report.Remaining != -100 {
		t.Errorf("Remaining = %d, want -100", report.Remaining)
	}
}

func TestAnalyze_DefaultBudget(t *testing.T) {
	report := New(0).Analyze(nil)
	if report.Budget != DefaultCharBudget {
		t.Errorf("Budget = %d, want %d", report.Budget, DefaultCharBudget)
	}
}

func TestNearLimit(t *testing.T) {
	if !New(1000).Analyze([]*skill.Skill{fakeSkill("a", 850)}).NearLimit() {
		t.Error("NearLimit = false at 85%")
	}
	if New(1000).Analyze([]*skill.Skill{fakeSkill("a", 500)}).NearLimit() {
		t.Error("NearLimit = true at 50%")
	}
}

func TestRender(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	report := New(500).Analyze([]*skill.Skill{
		fakeSkill("huge", 400),
		fakeSkill("tiny", 200),
	})

	var buf bytes.Buffer
	report.Render(&buf)

	out := buf.String()
	for _, want := range []string{
		"Character Budget Analysis",
		"OVER BUDGET",
		"Total characters: 600 / 500",
		"Breakdown by skill:",
		"huge",
		"Biggest skill: huge (400 chars)",
		"Recommendations:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
