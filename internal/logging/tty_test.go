package logging

import (
	"bytes"
	"testing"
)

func TestIsTTY_PlainWriter(t *testing.T) {
	var buf bytes.Buffer
	if IsTTY(&buf) {
		t.Error("bytes.Buffer reported as TTY")
	}
}

func TestSupportsColor_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if supportsColor(true) {
		t.Error("NO_COLOR set but color reported as supported")
	}
}

func TestSupportsColor_DumbTerm(t *testing.T) {
	t.Setenv("TERM", "dumb")
	if supportsColor(true) {
		t.Error("TERM=dumb but color reported as supported")
	}
}

func TestSupportsColor_NotTTY(t *testing.T) {
	if supportsColor(false) {
		t.Error("non-TTY writer reported as color capable")
	}
}
