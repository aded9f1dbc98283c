package ast

import "github.com/shelltoy/polysh/internal/token"

// SyntaxError carries an error-kind from spec §4.6/§7: "internal" for
// CheckSyntax rejections, "syntax" for malformed redirections found by
// ParseRedirects.
type SyntaxError struct {
	Kind string
	Msg  string
}

func (e *SyntaxError) Error() string { return e.Msg }

func synf(kind, msg string) error { return &SyntaxError{Kind: kind, Msg: msg} }

// CheckSyntax rejects UNSUPPORTED tokens (spec §4.6) and, per the
// conservative reading of spec §9's Open Question, a leading separator —
// a trailing separator is accepted (";"  and the async "&" both have
// well-defined trailing meaning, spec S8).
func CheckSyntax(toks []token.Token) error {
	for _, t := range toks {
		if t.Flags.Has(token.UNSUPPORTED) {
			return synf("internal", "unexpected token '"+t.Value+"'")
		}
	}
	for _, t := range toks {
		if t.Type == token.EMPTY {
			continue
		}
		if t.Flags.Has(token.COMMAND_SEPARATOR) {
			return synf("internal", "unexpected token near '"+t.Value+"'")
		}
		break
	}
	return nil
}
