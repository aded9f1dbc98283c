package ast

import (
	"testing"

	"github.com/shelltoy/polysh/internal/lexer"
)

func parseRedirectsFromLine(t *testing.T, line string) ([]string, []Redirect) {
	t.Helper()
	toks, err := lexer.Lex(line)
	if err != nil {
		t.Fatalf("lex %q: %v", line, err)
	}
	argv, redirects, err := ParseRedirects(toks)
	if err != nil {
		t.Fatalf("ParseRedirects %q: %v", line, err)
	}
	return argv, redirects
}

func TestParseRedirectsPlainArgv(t *testing.T) {
	argv, redirects := parseRedirectsFromLine(t, "echo a b c")
	if len(redirects) != 0 {
		t.Fatalf("redirects = %v, want none", redirects)
	}
	want := []string{"echo", "a", "b", "c"}
	if len(argv) != len(want) {
		t.Fatalf("argv = %v, want %v", argv, want)
	}
	for i := range want {
		if argv[i] != want[i] {
			t.Fatalf("argv = %v, want %v", argv, want)
		}
	}
}

func TestParseRedirectsOutToFile(t *testing.T) {
	argv, redirects := parseRedirectsFromLine(t, "echo hi > out.txt")
	if len(argv) != 2 || argv[0] != "echo" || argv[1] != "hi" {
		t.Fatalf("argv = %v", argv)
	}
	if len(redirects) != 1 {
		t.Fatalf("redirects = %v, want one", redirects)
	}
	r := redirects[0]
	if r.Kind != RedirOut || !r.LHS.IsFD || r.LHS.FD != 1 || r.RHS.Path != "out.txt" {
		t.Fatalf("redirect = %+v", r)
	}
}

func TestParseRedirectsAppend(t *testing.T) {
	_, redirects := parseRedirectsFromLine(t, "echo hi >> out.txt")
	if redirects[0].Kind != RedirOutAppend {
		t.Fatalf("kind = %v, want RedirOutAppend", redirects[0].Kind)
	}
}

func TestParseRedirectsExplicitFD(t *testing.T) {
	_, redirects := parseRedirectsFromLine(t, "cmd 2> err.txt")
	if len(redirects) != 1 {
		t.Fatalf("redirects = %v", redirects)
	}
	r := redirects[0]
	if !r.LHS.IsFD || r.LHS.FD != 2 || r.RHS.Path != "err.txt" {
		t.Fatalf("redirect = %+v, want LHS fd 2 -> err.txt", r)
	}
}

func TestParseRedirectsDupFD(t *testing.T) {
	_, redirects := parseRedirectsFromLine(t, "cmd 2>&1")
	if len(redirects) != 1 {
		t.Fatalf("redirects = %v", redirects)
	}
	r := redirects[0]
	if !r.LHS.IsFD || r.LHS.FD != 2 || !r.RHS.IsFD || r.RHS.FD != 1 {
		t.Fatalf("redirect = %+v, want fd2 -> fd1 dup", r)
	}
}

func TestParseRedirectsAmpOutBothStreams(t *testing.T) {
	_, redirects := parseRedirectsFromLine(t, "cmd &> both.txt")
	if len(redirects) != 1 {
		t.Fatalf("redirects = %v", redirects)
	}
	r := redirects[0]
	if !r.BothErrOut || r.RHS.Path != "both.txt" {
		t.Fatalf("redirect = %+v, want BothErrOut to both.txt", r)
	}
}

func TestParseRedirectsMissingTargetErrors(t *testing.T) {
	toks, err := lexer.Lex("echo hi >")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := ParseRedirects(toks); err == nil {
		t.Fatal("expected error for redirect with no target")
	}
}

func TestParseRedirectsInAmpNonDigitIsAmbiguous(t *testing.T) {
	toks, err := lexer.Lex("cmd <&notanumber")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := ParseRedirects(toks); err == nil {
		t.Fatal("expected ambiguous redirect error for <& with non-fd target")
	}
}
