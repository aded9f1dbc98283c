package expand

import (
	"strings"

	"github.com/shelltoy/polysh/internal/state"
	"github.com/shelltoy/polysh/internal/token"
)

// CaptureAssignments implements spec §4.5's assignment half: a VAR_DECL
// token whose immediately following token (no intervening EMPTY) is
// WORD_LIKE coalesces with it (supporting `X="a b"` after quote
// removal), the combined text splits on the first `=`, and the result is
// committed to the variable table. Both tokens are consumed — they never
// reach argv.
func CaptureAssignments(toks []token.Token, sh *state.Shell) []token.Token {
	out := make([]token.Token, 0, len(toks))
	i := 0
	for i < len(toks) {
		t := toks[i]
		if t.Type != token.VAR_DECL {
			out = append(out, t)
			i++
			continue
		}
		combined := t.Value
		j := i + 1
		if j < len(toks) && toks[j].Flags.Has(token.WORD_LIKE) {
			combined += toks[j].Value
			j++
		}
		name, value := splitAssignment(combined)
		if name != "" {
			sh.Vars.Set(name, value)
		}
		i = j
	}
	return out
}

func splitAssignment(s string) (name, value string) {
	idx := strings.IndexByte(s, '=')
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx+1:]
}
