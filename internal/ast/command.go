// Package ast holds the command-tree data model (spec §3) and the
// passes that build it from a token stream: the syntax checker (§4.6),
// the command splitter (§4.8) and the per-simple-command redirection
// parser (§4.9).
package ast

import "github.com/shelltoy/polysh/internal/token"

// Flags is the bit set an executor accumulates as it descends a Command
// tree (spec §3). Rather than storing these on the tree itself — which
// would make a single parsed line stateful across re-execution — they
// are threaded as executor call arguments; this type exists so callers
// share one vocabulary for them (spec §9: "no dynamic dispatch through
// inheritance is needed", the variant is pure data).
type Flags uint8

const (
	Builtin Flags = 1 << iota
	ForkNoWait
	Async
	ForcePipe
	PipeStderr
)

func (f Flags) Has(want Flags) bool { return f&want == want }

// RedirectKind is the effect a Redirect applies.
type RedirectKind int

const (
	RedirNone RedirectKind = iota
	RedirOut
	RedirOutAppend
	RedirIn
)

// Redirectee is either a file descriptor number or a path (spec §3).
type Redirectee struct {
	IsFD bool
	FD   int
	Path string
}

// Redirect is a single per-command descriptor remapping (spec §3/GLOSSARY).
type Redirect struct {
	LHS        Redirectee
	RHS        Redirectee
	Kind       RedirectKind
	BothErrOut bool
}

// SimpleCommand is a single program invocation, optionally with
// redirections (spec §3, GLOSSARY).
type SimpleCommand struct {
	// Tokens holds this command's tokens as they existed right after
	// alias expansion and splitting: variable/command substitution,
	// assignment capture, glob expansion and coalescing have not yet
	// run. That expansion pipeline runs per leaf at execution time (not
	// globally before splitting), so a later sibling observes variable
	// assignments and cd'd directories a left sibling already committed.
	Tokens []token.Token

	// Argv and Redirects are not filled in during execution: executeSimple
	// uses the argv and redirects that ParseRedirects returns directly, so
	// both fields stay nil on a parsed tree.
	Argv      []string
	Redirects []Redirect
}

// ConnectionCommand joins two commands with a connector token (spec §3).
type ConnectionCommand struct {
	Connector token.Token
	Left      *Command
	Right     *Command
}

// Command is the tagged variant described in spec §9: either a Simple or
// a Connection command, never both.
type Command struct {
	Simple     *SimpleCommand
	Connection *ConnectionCommand
}

// IsSimple reports whether c is a leaf simple-command node.
func (c *Command) IsSimple() bool { return c.Simple != nil }
