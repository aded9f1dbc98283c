// Package state bundles the process-wide mutable tables spec §9 calls out
// as a single Shell context passed by reference through the pipeline:
// the variable table, the alias table, last-errno, and the
// currently-executing script's path/line. The process table is not part
// of it: it lives in internal/jobs and is held by interp.Runner.
package state

import (
	"os"
	"sync"
)

// Exit codes, spec §6.
const (
	ExitSuccess         = 0
	ExitGenericFailure  = 1
	ExitArgError        = 2
	ExitCommandNotFound = 127
	ExitUnknownError    = 128
)

// Shell is the process-wide context threaded through the lexer, expander,
// splitter and executor. Only the main goroutine mutates Vars and
// Aliases (spec §5: "only the main thread mutates variables and
// aliases"); Errno is additionally read by the prompt renderer and the
// `errno` builtin, so it is guarded by a mutex even though in practice it
// is only ever written from the main goroutine, to make that invariant
// checkable rather than merely assumed.
type Shell struct {
	Vars    *Vars
	Aliases *Aliases

	errnoMu sync.Mutex
	errno   int

	// ExecPath/ExecLine publish the (path, line) of the script currently
	// being sourced, consulted by the error logger for `path:lineno:`
	// prefixing (spec §4.12, §7).
	ExecPath string
	ExecLine int
}

// New returns a Shell seeded from the process environment: every
// existing environment variable is inserted into Vars and marked
// exported, matching a freshly started POSIX shell.
func New() *Shell {
	s := &Shell{Vars: NewVars(), Aliases: NewAliases()}
	for _, kv := range os.Environ() {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				name, val := kv[:i], kv[i+1:]
				s.Vars.Set(name, val)
				s.Vars.Export(name)
				break
			}
		}
	}
	return s
}

// Errno returns the last-command exit code (spec §3 Errno).
func (s *Shell) Errno() int {
	s.errnoMu.Lock()
	defer s.errnoMu.Unlock()
	return s.errno
}

// SetErrno updates the last-command exit code.
func (s *Shell) SetErrno(code int) {
	s.errnoMu.Lock()
	s.errno = code
	s.errnoMu.Unlock()
}

// Lookup resolves a variable by consulting the internal table before the
// process environment (spec §4.3: "internal table is consulted before
// the process environment").
func (s *Shell) Lookup(name string) (string, bool) {
	if v, ok := s.Vars.Get(name); ok {
		return v, true
	}
	return os.LookupEnv(name)
}

// IFS returns the word-splitting delimiter set, defaulting to " \t\n".
func (s *Shell) IFS() string {
	if v, ok := s.Lookup("IFS"); ok {
		return v
	}
	return " \t\n"
}

// Environ renders the process environment to pass to a child: every
// internal variable explicitly exported, overlaid on the process's own
// environment so un-exported internal variables never leak to children.
func (s *Shell) Environ() []string {
	base := os.Environ()
	seen := map[string]bool{}
	for _, kv := range base {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				seen[kv[:i]] = true
				break
			}
		}
	}
	for _, name := range s.Vars.Exported() {
		val, _ := s.Vars.Get(name)
		if seen[name] {
			// overwrite the inherited value below.
			for i, kv := range base {
				if len(kv) > len(name) && kv[len(name)] == '=' && kv[:len(name)] == name {
					base[i] = name + "=" + val
					break
				}
			}
			continue
		}
		base = append(base, name+"="+val)
	}
	return base
}
