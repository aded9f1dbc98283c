package promptexp

import (
	"os"
	"strings"
	"testing"
)

func TestExpandUserEscape(t *testing.T) {
	os.Setenv("USER", "alice")
	defer os.Unsetenv("USER")
	if got := Expand(`\u`); got != "alice" {
		t.Fatalf("Expand(\\u) = %q, want alice", got)
	}
}

func TestExpandLiteralDollar(t *testing.T) {
	if got := Expand(`\$`); got != "$" {
		t.Fatalf("Expand(\\$) = %q, want $", got)
	}
}

func TestExpandUnknownEscapeVerbatim(t *testing.T) {
	if got := Expand(`\z`); got != "z" {
		t.Fatalf("Expand(\\z) = %q, want z", got)
	}
}

func TestExpandNewlineAndCR(t *testing.T) {
	if got := Expand(`a\nb`); got != "a\nb" {
		t.Fatalf("Expand(a\\nb) = %q", got)
	}
	if got := Expand(`a\rb`); got != "a\rb" {
		t.Fatalf("Expand(a\\rb) = %q", got)
	}
}

func TestExpandPlainTextPassesThrough(t *testing.T) {
	if got := Expand("plain text, no escapes"); got != "plain text, no escapes" {
		t.Fatalf("Expand passthrough = %q", got)
	}
}

func TestRenderSuccessMarker(t *testing.T) {
	os.Setenv("PS1", "$ ")
	defer os.Unsetenv("PS1")
	got := Render(0)
	if !strings.Contains(got, markerOK) {
		t.Fatalf("Render(0) = %q, want it to contain the success marker", got)
	}
	if strings.Contains(got, markerFail) {
		t.Fatal("Render(0) should not contain the failure marker")
	}
}

func TestRenderFailureMarker(t *testing.T) {
	os.Setenv("PS1", "$ ")
	defer os.Unsetenv("PS1")
	got := Render(127)
	if !strings.Contains(got, markerFail) {
		t.Fatalf("Render(127) = %q, want it to contain the failure marker", got)
	}
	if !strings.Contains(got, "127") {
		t.Fatalf("Render(127) = %q, want it to mention the exit code", got)
	}
}

func TestRenderFallsBackToDefaultPS1(t *testing.T) {
	os.Unsetenv("PS1")
	got := Render(0)
	if got == "" {
		t.Fatal("Render should never return an empty prompt")
	}
}
