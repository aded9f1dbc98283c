package expand

import (
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shelltoy/polysh/internal/token"
)

// ExpandGlobs implements spec §4.5's glob half: for each GLOB_EXPAND
// token, match the value as an OS glob pattern including tilde
// expansion; splice sorted matches back as WORD, EMPTY, WORD, ... . A
// token that matches nothing is left unchanged ("no nullglob").
//
// Grounded on stdlib path/filepath.Glob: the pack's pattern-matching
// libraries (e.g. the teacher's own `pattern` package) implement shell
// *pattern* semantics for matching in-memory strings, not filesystem
// globbing against the real directory tree this spec requires, so no
// third-party library in the pack substitutes for filepath.Glob here.
func ExpandGlobs(toks []token.Token) ([]token.Token, error) {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if !t.Flags.Has(token.GLOB_EXPAND) || !isGlobPattern(t.Value) {
			out = append(out, t)
			continue
		}
		pattern := expandTilde(t.Value)
		matches, err := filepath.Glob(pattern)
		if err != nil || len(matches) == 0 {
			out = append(out, t)
			continue
		}
		sort.Strings(matches)
		for i, m := range matches {
			if i > 0 {
				out = append(out, token.Token{Type: token.EMPTY})
			}
			out = append(out, token.New(token.WORD, m))
		}
	}
	return out, nil
}

func isGlobPattern(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

// expandTilde expands a leading ~ or ~user to the corresponding home
// directory; used only as the glob base, matching spec §4.5's "OS glob
// function including tilde expansion".
func expandTilde(s string) string {
	if !strings.HasPrefix(s, "~") {
		return s
	}
	rest := s[1:]
	name := rest
	tail := ""
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		name, tail = rest[:idx], rest[idx:]
	}
	var home string
	if name == "" {
		home, _ = os.UserHomeDir()
	} else if u, err := user.Lookup(name); err == nil {
		home = u.HomeDir
	} else {
		return s
	}
	if home == "" {
		return s
	}
	return home + tail
}
