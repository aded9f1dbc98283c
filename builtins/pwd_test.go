package builtins

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestPwdPrintsCwd(t *testing.T) {
	chdirGuard(t)
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	code := Pwd(&Context{Argv: []string{"pwd"}, Stdout: &out})
	if code != 0 {
		t.Fatalf("Pwd returned %d, want 0", code)
	}

	want, _ := filepath.EvalSymlinks(dir)
	got, _ := filepath.EvalSymlinks(string(bytes.TrimRight(out.Bytes(), "\n")))
	if got != want {
		t.Fatalf("pwd printed %q, want %q", got, want)
	}
}

func TestPwdTooManyArgsErrors(t *testing.T) {
	var out bytes.Buffer
	code := Pwd(&Context{Argv: []string{"pwd", "extra"}, Stderr: &out})
	if code != 1 {
		t.Fatalf("Pwd returned %d, want 1", code)
	}
}
