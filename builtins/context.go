// Package builtins implements spec §4.13's closed built-in registry:
// errno, pwd, cd, exit, echo, export, source (alias .), alias, unalias,
// jobs. Each handler is grounded on the matching
// original_source/src/builtin/*.cpp file.
package builtins

import (
	"io"
	"os"

	"github.com/shelltoy/polysh/internal/jobs"
	"github.com/shelltoy/polysh/internal/state"
)

// Context is what the executor hands to a built-in on every call,
// standing in for the original's bare (argc, argv) signature: the
// original reaches built-ins' other state through process-wide globals
// (aliases, processes, exec_path), which this repo threads explicitly
// instead (spec §9's guidance against hidden state).
type Context struct {
	Argv []string
	Sh   *state.Shell
	Jobs *jobs.Table

	// RunScript executes a file path line by line in the current shell,
	// implemented by internal/interp.Runner.RunScript. It is injected
	// here rather than imported directly so builtins never imports
	// interp, which itself imports builtins to dispatch them.
	RunScript func(path string) int

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (c *Context) in() io.Reader {
	if c.Stdin != nil {
		return c.Stdin
	}
	return os.Stdin
}

func (c *Context) out() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}

func (c *Context) errOut() io.Writer {
	if c.Stderr != nil {
		return c.Stderr
	}
	return os.Stderr
}
