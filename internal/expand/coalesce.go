package expand

import (
	"github.com/shelltoy/polysh/internal/token"
)

// Coalesce implements spec §4.7: after all other expansions, adjacent
// WORD_LIKE tokens with no intervening EMPTY boundary merge into the
// run's first token, which keeps its type and gains the concatenated
// value and the other tokens' flags (e.g. foo"bar"$baz -> one argv word), while a
// lone EMPTY boundary is dropped. Tokens that are not WORD_LIKE (an
// operator, a still-unexpanded VAR_DECL) pass through untouched and
// break any run in progress.
func Coalesce(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	i := 0
	for i < len(toks) {
		t := toks[i]
		if t.Type == token.EMPTY {
			i++
			continue
		}
		if !t.Flags.Has(token.WORD_LIKE) {
			out = append(out, t)
			i++
			continue
		}
		merged := t
		j := i + 1
		for j < len(toks) && toks[j].Flags.Has(token.WORD_LIKE) {
			merged.Value += toks[j].Value
			merged.Flags |= toks[j].Flags
			j++
		}
		out = append(out, merged)
		i = j
	}
	return out
}
