package frontmatter

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestMapping_OrderPreserved(t *testing.T) {
	input := "---\nzeta: 1\nalpha: 2\nmike: 3\n---\n"
	m, _ := Parse(input)

	want := []string{"zeta", "alpha", "mike"}
	if !reflect.DeepEqual(m.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", m.Keys(), want)
	}
}

func TestMapping_NilSafe(t *testing.T) {
	var m *Mapping
	if m.Len() != 0 {
		t.Errorf("nil Len() = %d, want 0", m.Len())
	}
	if m.Keys() != nil {
		t.Errorf("nil Keys() = %v, want nil", m.Keys())
	}
	if _, ok := m.Get("anything"); ok {
		t.Error("nil Get() = present, want absent")
	}
	if m.GetString("anything") != "" {
		t.Error("nil GetString() != \"\"")
	}
}

func TestMapping_MarshalJSON(t *testing.T) {
	input := "---\nname: x\nhooks:\n  PreToolUse:\n    - command: \"run\" timeout: 5\ntools:\n  - Read\n---\n"
	m, _ := Parse(input)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"name":"x","hooks":{"PreToolUse":[{"command":"run","timeout":"5"}]},"tools":["Read"]}`
	if string(data) != want {
		t.Errorf("JSON = %s\nwant   %s", data, want)
	}
}

func TestMapping_AsMap(t *testing.T) {
	input := "---\nname: x\nmeta:\n  author: a\ntools:\n  - Read\n---\n"
	m, _ := Parse(input)

	got := m.AsMap()
	if got["name"] != "x" {
		t.Errorf("name = %v, want x", got["name"])
	}
	meta, ok := got["meta"].(map[string]any)
	if !ok {
		t.Fatalf("meta = %T, want map[string]any", got["meta"])
	}
	if meta["author"] != "a" {
		t.Errorf("author = %v, want a", meta["author"])
	}
	tools, ok := got["tools"].([]any)
	if !ok || len(tools) != 1 || tools[0] != "Read" {
		t.Errorf("tools = %v, want [Read]", got["tools"])
	}
}

func TestValue_ZeroIsEmptyScalar(t *testing.T) {
	var v Value
	if v.Kind() != KindScalar {
		t.Errorf("zero Kind() = %v, want scalar", v.Kind())
	}
	s, ok := v.Scalar()
	if !ok || s != "" {
		t.Errorf("zero Scalar() = %q, %v", s, ok)
	}
	if _, ok := v.Mapping(); ok {
		t.Error("zero Mapping() = present")
	}
	if _, ok := v.Sequence(); ok {
		t.Error("zero Sequence() = present")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindScalar, "scalar"},
		{KindMapping, "mapping"},
		{KindSequence, "sequence"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	input := "---\nname: round-trip\ndescription: plain value\nmeta:\n  author: someone\n---\nThe body.\n"
	m, body := Parse(input)

	out, err := Format(m, body)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	m2, body2 := Parse(string(out))
	if got := m2.GetString("name"); got != "round-trip" {
		t.Errorf("reparsed name = %q, want %q", got, "round-trip")
	}
	if got := m2.GetString("description"); got != "plain value" {
		t.Errorf("reparsed description = %q, want %q", got, "plain value")
	}
	meta, ok := m2.Get("meta")
	if !ok {
		t.Fatal("reparsed meta missing")
	}
	nested, ok := meta.Mapping()
	if !ok || nested.GetString("author") != "someone" {
		t.Errorf("reparsed meta = %v, want mapping with author", meta.Kind())
	}
	if body2 != "The body." {
		t.Errorf("reparsed body = %q, want %q", body2, "The body.")
	}
}

func TestFormat_Delimiters(t *testing.T) {
	m, _ := Parse("---\nname: x\n---\n")
	out, err := Format(m, "body")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	s := string(out)
	if !strings.HasPrefix(s, "---\n") {
		t.Errorf("output does not start with delimiter: %q", s)
	}
	if !strings.Contains(s, "\n---\n") {
		t.Errorf("output has no closing delimiter: %q", s)
	}
	if !strings.HasSuffix(s, "body\n") {
		t.Errorf("output does not end with body and newline: %q", s)
	}
}
