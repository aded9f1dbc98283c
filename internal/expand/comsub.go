package expand

import (
	"strings"

	"github.com/shelltoy/polysh/internal/token"
)

// ComSubRunner executes the captured body of a $( ... ) token and
// returns its standard output, implementing the pipe/fork/drain dance of
// spec §4.4. The interp package supplies the concrete implementation;
// this interface exists so internal/expand never imports internal/interp
// (which itself needs to expand argv — the two packages would otherwise
// form an import cycle).
type ComSubRunner interface {
	RunCapture(body string) (string, error)
}

// ExpandComSubs implements spec §4.4: run each COM_SUB token's captured
// body as a full input line, strip trailing newlines from its output,
// then word-split exactly as in §4.3 (or keep as one token if
// NO_WORD_SPLIT).
func ExpandComSubs(toks []token.Token, sh Lookup, runner ComSubRunner) ([]token.Token, error) {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.Type != token.COM_SUB {
			out = append(out, t)
			continue
		}
		output, err := runner.RunCapture(t.Value)
		if err != nil {
			return nil, err
		}
		output = strings.TrimRight(output, "\n")

		if t.Flags.Has(token.NO_WORD_SPLIT) {
			nt := token.New(token.WORD, output)
			nt.AddFlag(token.NO_WORD_SPLIT)
			out = append(out, nt)
			continue
		}
		words := splitIFS(output, sh.IFS())
		for i, w := range words {
			if i > 0 {
				out = append(out, token.Token{Type: token.EMPTY})
			}
			out = append(out, token.New(token.WORD, w))
		}
	}
	return out, nil
}
