package builtins

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shelltoy/polysh/internal/state"
)

func TestExportBareNameExportsExistingValue(t *testing.T) {
	sh := &state.Shell{Vars: state.NewVars(), Aliases: state.NewAliases()}
	sh.Vars.Set("FOO", "bar")
	Export(&Context{Argv: []string{"export", "FOO"}, Sh: sh})
	if !sh.Vars.IsExported("FOO") {
		t.Fatal("FOO should be exported")
	}
	v, _ := sh.Vars.Get("FOO")
	if v != "bar" {
		t.Fatalf("FOO = %q, want unchanged %q", v, "bar")
	}
}

func TestExportNameEqualsValueSetsAndExports(t *testing.T) {
	sh := &state.Shell{Vars: state.NewVars(), Aliases: state.NewAliases()}
	Export(&Context{Argv: []string{"export", "FOO=baz"}, Sh: sh})
	v, ok := sh.Vars.Get("FOO")
	if !ok || v != "baz" {
		t.Fatalf("FOO = (%q, %v), want (\"baz\", true)", v, ok)
	}
	if !sh.Vars.IsExported("FOO") {
		t.Fatal("FOO should be exported")
	}
}

func TestExportNoArgsListsOnlyExported(t *testing.T) {
	sh := &state.Shell{Vars: state.NewVars(), Aliases: state.NewAliases()}
	sh.Vars.Set("UNEXPORTED", "1")
	sh.Vars.Set("EXPORTED", "2")
	sh.Vars.Export("EXPORTED")

	var out bytes.Buffer
	Export(&Context{Argv: []string{"export"}, Sh: sh, Stdout: &out})

	if strings.Contains(out.String(), "UNEXPORTED") {
		t.Fatalf("listing should omit unexported vars, got %q", out.String())
	}
	if !strings.Contains(out.String(), "declare -x EXPORTED=2") {
		t.Fatalf("listing missing EXPORTED entry, got %q", out.String())
	}
}
