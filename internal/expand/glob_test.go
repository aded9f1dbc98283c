package expand

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/shelltoy/polysh/internal/token"
)

func TestExpandGlobsMatchesFiles(t *testing.T) {
	dir := t.TempDir()
	names := []string{"a.txt", "b.txt", "c.log"}
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	pattern := filepath.Join(dir, "*.txt")
	tok := token.New(token.WORD, pattern)
	out, err := ExpandGlobs([]token.Token{tok})
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, tk := range out {
		if tk.Type == token.WORD {
			got = append(got, tk.Value)
		}
	}
	sort.Strings(got)
	want := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got = %v, want %v", got, want)
	}
}

func TestExpandGlobsNoMatchLeavesTokenUnchanged(t *testing.T) {
	tok := token.New(token.WORD, "/no/such/dir/*.nonexistent")
	out, err := ExpandGlobs([]token.Token{tok})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Value != tok.Value {
		t.Fatalf("out = %+v, want unchanged token (no nullglob)", out)
	}
}

func TestExpandGlobsSkipsNonGlobTokens(t *testing.T) {
	tok := token.New(token.WORD, "plainword")
	out, err := ExpandGlobs([]token.Token{tok})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Value != "plainword" {
		t.Fatalf("out = %+v, want unchanged", out)
	}
}

func TestExpandGlobsOnlyAppliesToGlobExpandFlag(t *testing.T) {
	tok := token.New(token.SQSTRING, "*.txt")
	out, err := ExpandGlobs([]token.Token{tok})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Value != "*.txt" {
		t.Fatalf("single-quoted glob chars must not expand, got %+v", out)
	}
}

func TestExpandTildeHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		t.Skip("no home directory available")
	}
	got := expandTilde("~/sub")
	want := home + "/sub"
	if got != want {
		t.Fatalf("expandTilde(~/sub) = %q, want %q", got, want)
	}
}
