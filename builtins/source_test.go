package builtins

import (
	"bytes"
	"testing"
)

func TestSourceDelegatesToRunScript(t *testing.T) {
	var seenPath string
	ctx := &Context{
		Argv: []string{"source", "/tmp/whatever.sh"},
		RunScript: func(path string) int {
			seenPath = path
			return 42
		},
	}
	if code := Source(ctx); code != 42 {
		t.Fatalf("Source returned %d, want 42 (RunScript's return value)", code)
	}
	if seenPath != "/tmp/whatever.sh" {
		t.Fatalf("RunScript called with %q, want %q", seenPath, "/tmp/whatever.sh")
	}
}

func TestSourceWrongArgCountErrors(t *testing.T) {
	var out bytes.Buffer
	called := false
	ctx := &Context{
		Argv:      []string{"source"},
		Stderr:    &out,
		RunScript: func(string) int { called = true; return 0 },
	}
	if code := Source(ctx); code != 1 {
		t.Fatalf("Source returned %d, want 1", code)
	}
	if called {
		t.Fatal("RunScript should not be called when arguments are wrong")
	}
}
