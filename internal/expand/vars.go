package expand

import (
	"strings"

	"github.com/shelltoy/polysh/internal/token"
)

// Lookup resolves a variable name to a value, consulting the internal
// table before the process environment (spec §4.3).
type Lookup interface {
	Lookup(name string) (string, bool)
	IFS() string
}

// ExpandVars implements spec §4.3: scans every VAR_EXPAND token's value
// for `\$` and `$NAME`, then word-splits the result on IFS unless the
// token carries NO_WORD_SPLIT, replacing it in place with a
// WORD, EMPTY, WORD, ... sequence. COM_SUB tokens pass through untouched:
// their body is expanded when ExpandComSubs runs it as a line of its own.
func ExpandVars(toks []token.Token, sh Lookup) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if !t.Flags.Has(token.VAR_EXPAND) || t.Type == token.COM_SUB {
			out = append(out, t)
			continue
		}
		val := substituteVars(t.Value, sh)
		if t.Flags.Has(token.NO_WORD_SPLIT) {
			nt := t
			nt.Value = val
			out = append(out, nt)
			continue
		}
		words := splitIFS(val, sh.IFS())
		for i, w := range words {
			if i > 0 {
				out = append(out, token.Token{Type: token.EMPTY})
			}
			out = append(out, token.New(token.WORD, w))
		}
	}
	return out
}

// substituteVars performs the left-to-right scan of spec §4.3: `\$`
// yields a literal `$`; any other `\c` yields a literal `c` (a
// generalization of the same quote-removal rule the spec states for the
// `$` case specifically); `$NAME` consumes the longest run of
// [A-Za-z0-9_] and is replaced by its value, or the empty string if
// unresolved.
func substituteVars(s string, sh Lookup) string {
	var b strings.Builder
	r := []rune(s)
	for i := 0; i < len(r); i++ {
		c := r[i]
		switch {
		case c == '\\' && i+1 < len(r):
			b.WriteRune(r[i+1])
			i++
		case c == '$' && i+1 < len(r) && isNameRune(r[i+1]):
			j := i + 1
			for j < len(r) && isNameRune(r[j]) {
				j++
			}
			name := string(r[i+1 : j])
			if val, ok := sh.Lookup(name); ok {
				b.WriteString(val)
			}
			i = j - 1
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

func isNameRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// splitIFS splits s on any character in ifs, collapsing consecutive
// separators, discarding leading/trailing separators (spec §4.3).
func splitIFS(s, ifs string) []string {
	if ifs == "" {
		if s == "" {
			return nil
		}
		return []string{s}
	}
	var words []string
	var cur strings.Builder
	inWord := false
	for _, r := range s {
		if strings.ContainsRune(ifs, r) {
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
			continue
		}
		cur.WriteRune(r)
		inWord = true
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words
}
