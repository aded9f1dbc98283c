package expand

import (
	"github.com/shelltoy/polysh/internal/lexer"
	"github.com/shelltoy/polysh/internal/state"
	"github.com/shelltoy/polysh/internal/token"
)

// ExpandAliases implements spec §4.2: rewrites every COMMAND token by
// looking it up in the alias table, re-lexing the replacement and
// splicing it into the stream, cycle-safe per expansion chain.
func ExpandAliases(toks []token.Token, aliases *state.Aliases) ([]token.Token, error) {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.Type != token.COMMAND {
			out = append(out, t)
			continue
		}
		expanded, err := expandAliasChain(t, aliases, map[string]bool{})
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}

func expandAliasChain(t token.Token, aliases *state.Aliases, seen map[string]bool) ([]token.Token, error) {
	repl, ok := aliases.Get(t.Value)
	if !ok || seen[t.Value] {
		return []token.Token{t}, nil
	}
	seen[t.Value] = true

	lexed, err := lexer.Lex(repl)
	if err != nil {
		return nil, err
	}
	if len(lexed) == 0 {
		return nil, nil
	}

	head := lexed[0]
	if head.Type != token.COMMAND {
		return lexed, nil
	}
	more, err := expandAliasChain(head, aliases, seen)
	if err != nil {
		return nil, err
	}
	return append(more, lexed[1:]...), nil
}
