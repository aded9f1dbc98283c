package ast

import (
	"testing"

	"github.com/shelltoy/polysh/internal/lexer"
	"github.com/shelltoy/polysh/internal/token"
)

// depth returns the length of c's left spine: 0 for a simple command,
// otherwise 1 + depth(Left).
func depth(c *Command) int {
	if c.IsSimple() {
		return 0
	}
	return 1 + depth(c.Connection.Left)
}

func TestSplitSingleCommandIsLeaf(t *testing.T) {
	toks, err := lexer.Lex("echo hi")
	if err != nil {
		t.Fatal(err)
	}
	cmd, err := Split(toks)
	if err != nil {
		t.Fatal(err)
	}
	if !cmd.IsSimple() {
		t.Fatal("single command should split to a simple leaf")
	}
}

func TestSplitDepthMatchesSeparatorCount(t *testing.T) {
	cases := []struct {
		input string
		seps  int
	}{
		{"a", 0},
		{"a; b", 1},
		{"a; b; c", 2},
		{"a && b || c; d", 3},
	}
	for _, c := range cases {
		toks, err := lexer.Lex(c.input)
		if err != nil {
			t.Fatalf("%q: %v", c.input, err)
		}
		cmd, err := Split(toks)
		if err != nil {
			t.Fatalf("%q: %v", c.input, err)
		}
		if got := depth(cmd); got != c.seps {
			t.Errorf("%q: depth = %d, want %d", c.input, got, c.seps)
		}
	}
}

func TestSplitLeftLeaning(t *testing.T) {
	toks, err := lexer.Lex("a; b; c")
	if err != nil {
		t.Fatal(err)
	}
	cmd, err := Split(toks)
	if err != nil {
		t.Fatal(err)
	}
	// ((a; b); c): root's Right is "c", root's Left is the "a; b" node.
	if !cmd.Connection.Right.IsSimple() {
		t.Fatal("root's Right should be the rightmost simple command")
	}
	if cmd.Connection.Left.IsSimple() {
		t.Fatal("root's Left should still be a connection for a 3-command chain")
	}
}

func TestSplitRejectsLeadingSeparator(t *testing.T) {
	toks, err := lexer.Lex("; echo hi")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Split(toks); err == nil {
		t.Fatal("expected error for leading separator")
	}
}

func TestSplitAcceptsTrailingAsync(t *testing.T) {
	toks, err := lexer.Lex("sleep 1 &")
	if err != nil {
		t.Fatal(err)
	}
	cmd, err := Split(toks)
	if err != nil {
		t.Fatalf("trailing & should be accepted: %v", err)
	}
	// A trailing connector still folds into a connection node whose Right
	// is an empty simple command; it executes as a no-op success rather
	// than being rejected (spec §9's reading: well-defined trailing &/;).
	if cmd.IsSimple() {
		t.Fatal("trailing & should still produce a connection node")
	}
	if cmd.Connection.Connector.Type != token.AMP {
		t.Fatalf("connector = %v, want AMP", cmd.Connection.Connector.Type)
	}
	if len(cmd.Connection.Right.Simple.Tokens) != 0 {
		t.Fatalf("trailing &'s right leaf should have no tokens, got %v", cmd.Connection.Right.Simple.Tokens)
	}
}
