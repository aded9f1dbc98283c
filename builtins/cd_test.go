package builtins

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/shelltoy/polysh/internal/state"
)

func chdirGuard(t *testing.T) {
	t.Helper()
	cur, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(cur) })
}

func TestCdChangesDirectory(t *testing.T) {
	chdirGuard(t)
	dir := t.TempDir()
	sh := state.New()
	ctx := &Context{Argv: []string{"cd", dir}, Sh: sh}
	if code := Cd(ctx); code != 0 {
		t.Fatalf("Cd returned %d, want 0", code)
	}
	cur, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want, _ := filepath.EvalSymlinks(dir)
	got, _ := filepath.EvalSymlinks(cur)
	if got != want {
		t.Fatalf("cwd = %q, want %q", got, want)
	}
}

func TestCdSetsOldprev(t *testing.T) {
	chdirGuard(t)
	start, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	sh := state.New()
	Cd(&Context{Argv: []string{"cd", dir}, Sh: sh})

	oldprev, ok := sh.Lookup("OLDPREV")
	if !ok {
		t.Fatal("OLDPREV was not set")
	}
	wantOld, _ := filepath.EvalSymlinks(start)
	gotOld, _ := filepath.EvalSymlinks(oldprev)
	if gotOld != wantOld {
		t.Fatalf("OLDPREV = %q, want %q", oldprev, start)
	}
}

func TestCdDashReturnsToOldprev(t *testing.T) {
	chdirGuard(t)
	dir := t.TempDir()
	sh := state.New()
	Cd(&Context{Argv: []string{"cd", dir}, Sh: sh})

	start, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if code := Cd(&Context{Argv: []string{"cd", "-"}, Sh: sh, Stdout: &out}); code != 0 {
		t.Fatalf("cd - returned %d, want 0", code)
	}
	if out.String() == "" {
		t.Fatal("cd - should print the directory it switched to")
	}

	cur, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if cur == start {
		t.Fatalf("cd - did not leave %q", start)
	}
}

func TestCdNoHomeErrors(t *testing.T) {
	chdirGuard(t)
	t.Setenv("HOME", "")
	sh := &state.Shell{Vars: state.NewVars(), Aliases: state.NewAliases()}
	var out bytes.Buffer
	if code := Cd(&Context{Argv: []string{"cd"}, Sh: sh, Stderr: &out}); code == 0 {
		t.Fatal("cd with no HOME set should fail")
	}
}

func TestCdTooManyArgs(t *testing.T) {
	chdirGuard(t)
	var out bytes.Buffer
	code := Cd(&Context{Argv: []string{"cd", "a", "b"}, Sh: state.New(), Stderr: &out})
	if code != 1 {
		t.Fatalf("Cd returned %d, want 1", code)
	}
}

func TestCdNoSuchDirectory(t *testing.T) {
	chdirGuard(t)
	var out bytes.Buffer
	code := Cd(&Context{Argv: []string{"cd", "/no/such/directory/at/all"}, Sh: state.New(), Stderr: &out})
	if code != 1 {
		t.Fatalf("Cd returned %d, want 1", code)
	}
}
