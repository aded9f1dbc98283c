package expand

import (
	"testing"

	"github.com/shelltoy/polysh/internal/state"
	"github.com/shelltoy/polysh/internal/token"
)

func TestCaptureAssignmentsSingleToken(t *testing.T) {
	sh := &state.Shell{Vars: state.NewVars(), Aliases: state.NewAliases()}
	toks := []token.Token{token.New(token.VAR_DECL, "FOO=bar")}
	out := CaptureAssignments(toks, sh)
	if len(out) != 0 {
		t.Fatalf("out = %+v, want assignment fully consumed", out)
	}
	val, ok := sh.Vars.Get("FOO")
	if !ok || val != "bar" {
		t.Fatalf("FOO = (%q, %v), want (bar, true)", val, ok)
	}
}

func TestCaptureAssignmentsCoalescesFollowingWord(t *testing.T) {
	sh := &state.Shell{Vars: state.NewVars(), Aliases: state.NewAliases()}
	toks := []token.Token{
		token.New(token.VAR_DECL, "FOO="),
		token.New(token.DQSTRING, "a b"),
	}
	out := CaptureAssignments(toks, sh)
	if len(out) != 0 {
		t.Fatalf("out = %+v, want both tokens consumed", out)
	}
	val, _ := sh.Vars.Get("FOO")
	if val != "a b" {
		t.Fatalf("FOO = %q, want 'a b'", val)
	}
}

func TestCaptureAssignmentsLeavesOrdinaryTokens(t *testing.T) {
	sh := &state.Shell{Vars: state.NewVars(), Aliases: state.NewAliases()}
	toks := []token.Token{
		token.New(token.VAR_DECL, "FOO=bar"),
		{Type: token.EMPTY},
		token.New(token.WORD, "echo"),
	}
	out := CaptureAssignments(toks, sh)
	if len(out) != 2 || out[1].Value != "echo" {
		t.Fatalf("out = %+v, want EMPTY+echo to survive", out)
	}
}
