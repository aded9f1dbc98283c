// Package lexer implements the single left-to-right scan described in
// spec §4.1: input string to classified token sequence, respecting
// quoting and $( ... ) nesting.
package lexer

import (
	"strings"

	"github.com/shelltoy/polysh/internal/token"
)

// ParseError is the error-kind carried by lexer failures (spec §7:
// "parse/syntax"). Kind is always "internal-parse" at this layer.
type ParseError struct {
	Kind string
	Msg  string
}

func (e *ParseError) Error() string { return e.Msg }

func errf(msg string) error { return &ParseError{Kind: "internal-parse", Msg: msg} }

type lexer struct {
	runes           []rune
	pos             int
	commandExpected bool
	buf             strings.Builder
	toks            []token.Token
}

// Lex tokenizes a single input line per spec §4.1.
func Lex(input string) ([]token.Token, error) {
	l := &lexer{runes: []rune(input), commandExpected: true}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.runes) {
		return 0
	}
	return l.runes[l.pos]
}

func (l *lexer) peekAt(off int) rune {
	if l.pos+off >= len(l.runes) {
		return 0
	}
	return l.runes[l.pos+off]
}

// flushWord turns any buffered plain text into a WORD token (retyped to
// COMMAND or VAR_DECL per command_expected) and appends it.
func (l *lexer) flushWord() {
	if l.buf.Len() == 0 {
		return
	}
	val := l.buf.String()
	l.buf.Reset()
	l.emit(l.classifyWord(val))
}

func (l *lexer) classifyWord(val string) token.Token {
	if l.commandExpected {
		if name, ok := assignmentPrefix(val); ok {
			_ = name
			return token.New(token.VAR_DECL, val)
		}
		return token.New(token.COMMAND, val)
	}
	return token.New(token.WORD, val)
}

// assignmentPrefix reports whether val looks like NAME=... in command
// position (spec §4.1: "A WORD containing `=`... becomes VAR_DECL").
func assignmentPrefix(val string) (string, bool) {
	if val == "" {
		return "", false
	}
	r := []rune(val)
	if !isIdentStart(r[0]) {
		return "", false
	}
	i := 1
	for i < len(r) && isIdentCont(r[i]) {
		i++
	}
	if i < len(r) && r[i] == '=' {
		return string(r[:i]), true
	}
	return "", false
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

// emit appends a token and updates command_expected for the next token.
func (l *lexer) emit(t token.Token) {
	l.toks = append(l.toks, t)
	l.commandExpected = t.Flags.Has(token.COMMAND_SEPARATOR)
}

func (l *lexer) lastNonEmpty() *token.Token {
	for i := len(l.toks) - 1; i >= 0; i-- {
		if l.toks[i].Type != token.EMPTY {
			return &l.toks[i]
		}
	}
	return nil
}

func (l *lexer) run() error {
	for l.pos < len(l.runes) {
		c := l.runes[l.pos]
		switch {
		case c == '#' && l.atWordStart():
			l.pos = len(l.runes)
		case c == '\'':
			l.flushWord()
			l.pos++
			t, err := l.lexSingle()
			if err != nil {
				return err
			}
			l.emit(t)
		case c == '"':
			l.flushWord()
			l.pos++
			toks, err := l.lexDouble()
			if err != nil {
				return err
			}
			for _, t := range toks {
				l.emit(t)
			}
		case c == '\\':
			l.pos++
			if l.pos < len(l.runes) {
				l.buf.WriteRune('\\')
				l.buf.WriteRune(l.runes[l.pos])
				l.pos++
			} else {
				l.buf.WriteRune('\\')
			}
		case c == ' ' || c == '\t':
			l.flushWord()
			l.markBoundary()
			l.pos++
		case c == '$' && l.peekAt(1) == '(':
			l.flushWord()
			l.pos += 2
			t, err := l.lexComSub(false)
			if err != nil {
				return err
			}
			l.emit(t)
		case isOperatorRune(c):
			l.flushWord()
			if err := l.emitOperator(); err != nil {
				return err
			}
		default:
			l.buf.WriteRune(c)
			l.pos++
		}
	}
	l.flushWord()
	return nil
}

func (l *lexer) atWordStart() bool {
	return l.buf.Len() == 0
}

// markBoundary records that a run of whitespace occurred here, so that
// the two tokens on either side of it are never later merged by the
// adjacent-word coalescing pass (spec §4.7: EMPTY tokens keep genuinely
// separate words from being re-coalesced). Consecutive whitespace
// collapses to a single marker.
func (l *lexer) markBoundary() {
	if n := len(l.toks); n > 0 && l.toks[n-1].Type == token.EMPTY {
		return
	}
	l.toks = append(l.toks, token.Token{Type: token.EMPTY})
}

func isOperatorRune(c rune) bool {
	switch c {
	case '&', '|', '>', '<', ';', '(', ')':
		return true
	}
	return false
}

func (l *lexer) emitOperator() error {
	c := l.runes[l.pos]
	l.pos++
	var t token.Token
	switch c {
	case ';':
		t = token.New(token.SEMICOLON, ";")
	case '(':
		t = token.New(token.SUBOPEN, "(")
	case ')':
		t = token.New(token.SUBCLOSE, ")")
	case '&':
		switch {
		case l.peek() == '&':
			l.pos++
			t = token.New(token.AND, "&&")
		case l.peek() == '>':
			l.pos++
			if l.peek() == '>' {
				l.pos++
				t = token.New(token.AMP_APPEND, "&>>")
			} else {
				t = token.New(token.AMP_OUT, "&>")
			}
		default:
			t = token.New(token.AMP, "&")
		}
	case '|':
		switch {
		case l.peek() == '|':
			l.pos++
			t = token.New(token.OR, "||")
		case l.peek() == '&':
			l.pos++
			t = token.New(token.PIPE_AMP, "|&")
		default:
			t = token.New(token.PIPE, "|")
		}
	case '>':
		switch {
		case l.peek() == '>':
			l.pos++
			t = token.New(token.OUT_APPEND, ">>")
		case l.peek() == '&':
			l.pos++
			t = token.New(token.OUT_AMP, ">&")
		default:
			t = token.New(token.OUT, ">")
		}
	case '<':
		if l.peek() == '&' {
			l.pos++
			t = token.New(token.IN_AMP, "<&")
		} else {
			t = token.New(token.IN, "<")
		}
	}
	if t.Flags.Has(token.COMMAND_SEPARATOR) {
		if last := l.lastNonEmpty(); last != nil && last.Flags.Has(token.COMMAND_SEPARATOR) {
			return errf("unexpected token near '" + t.Value + "'")
		}
	}
	l.emit(t)
	return nil
}

// lexSingle consumes a verbatim single-quoted literal; l.pos is already
// past the opening quote.
func (l *lexer) lexSingle() (token.Token, error) {
	start := l.pos
	for l.pos < len(l.runes) {
		if l.runes[l.pos] == '\'' {
			body := string(l.runes[start:l.pos])
			l.pos++
			return token.New(token.SQSTRING, body), nil
		}
		l.pos++
	}
	return token.Token{}, errf("unclosed delimiter")
}

// lexDouble consumes a double-quoted literal, which may contain nested
// $( ... ) command substitutions; it returns one or more tokens (the
// literal pieces plus any embedded COM_SUB tokens, in order). l.pos is
// already past the opening quote.
func (l *lexer) lexDouble() ([]token.Token, error) {
	var toks []token.Token
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			toks = append(toks, token.New(token.DQSTRING, buf.String()))
			buf.Reset()
		}
	}
	for {
		if l.pos >= len(l.runes) {
			return toks, errf("unclosed delimiter")
		}
		c := l.runes[l.pos]
		switch {
		case c == '"':
			l.pos++
			flush()
			if len(toks) == 0 {
				toks = append(toks, token.New(token.DQSTRING, ""))
			}
			return toks, nil
		case c == '\\':
			l.pos++
			nc := rune(0)
			if l.pos < len(l.runes) {
				nc = l.runes[l.pos]
			}
			switch nc {
			case '\\', '"':
				buf.WriteRune(nc)
				l.pos++
			default:
				buf.WriteRune('\\')
			}
		case c == '$' && l.peekAt(1) == '(':
			flush()
			l.pos += 2
			t, err := l.lexComSub(true)
			if err != nil {
				return toks, err
			}
			toks = append(toks, t)
		default:
			buf.WriteRune(c)
			l.pos++
		}
	}
}

// lexComSub captures the body of a $( ... ) verbatim, respecting balanced
// parens and inner quote pairing. l.pos is already past "$(". quoted
// marks whether this COM_SUB was born inside a double-quoted string.
func (l *lexer) lexComSub(quoted bool) (token.Token, error) {
	start := l.pos
	depth := 1
	var quote rune
	for l.pos < len(l.runes) {
		c := l.runes[l.pos]
		if quote != 0 {
			if c == '\\' && quote == '"' {
				l.pos++
				if l.pos < len(l.runes) {
					l.pos++
				}
				continue
			}
			if c == quote {
				quote = 0
			}
			l.pos++
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
			l.pos++
		case '\\':
			l.pos++
			if l.pos < len(l.runes) {
				l.pos++
			}
		case '(':
			depth++
			l.pos++
		case ')':
			depth--
			l.pos++
			if depth == 0 {
				body := string(l.runes[start : l.pos-1])
				t := token.New(token.COM_SUB, body)
				if quoted {
					t.AddFlag(token.NO_WORD_SPLIT)
				}
				return t, nil
			}
		default:
			l.pos++
		}
	}
	return token.Token{}, errf("expected ')'")
}
