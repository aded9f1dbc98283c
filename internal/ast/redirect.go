package ast

import (
	"strconv"

	"github.com/shelltoy/polysh/internal/token"
)

// ParseRedirects implements spec §4.9: per simple command, after
// expansion but before argv construction, extract redirect records from
// the token stream and build argv from the remaining WORD_LIKE tokens
// with non-empty values.
func ParseRedirects(toks []token.Token) ([]string, []Redirect, error) {
	var argv []string
	var redirects []Redirect

	i := 0
	for i < len(toks) {
		t := toks[i]
		if t.Type == token.EMPTY {
			i++
			continue
		}
		if !t.Flags.Has(token.REDIRECT) {
			if t.Flags.Has(token.WORD_LIKE) && t.Value != "" {
				argv = append(argv, t.Value)
			}
			i++
			continue
		}

		r := Redirect{}
		switch t.Type {
		case token.OUT:
			r.Kind, r.LHS = RedirOut, Redirectee{IsFD: true, FD: 1}
		case token.OUT_APPEND:
			r.Kind, r.LHS = RedirOutAppend, Redirectee{IsFD: true, FD: 1}
		case token.IN:
			r.Kind, r.LHS = RedirIn, Redirectee{IsFD: true, FD: 0}
		case token.OUT_AMP:
			r.Kind, r.LHS = RedirOut, Redirectee{IsFD: true, FD: 1}
		case token.IN_AMP:
			r.Kind, r.LHS = RedirIn, Redirectee{IsFD: true, FD: 0}
		case token.AMP_OUT:
			r.Kind, r.LHS, r.BothErrOut = RedirOut, Redirectee{IsFD: true, FD: 1}, true
		case token.AMP_APPEND:
			r.Kind, r.LHS, r.BothErrOut = RedirOutAppend, Redirectee{IsFD: true, FD: 1}, true
		}

		// Explicit source fd prefix (n>word); not applicable to &>/&>>.
		if t.Type != token.AMP_OUT && t.Type != token.AMP_APPEND && len(argv) > 0 {
			if last := argv[len(argv)-1]; isAllDigits(last) {
				fd, _ := strconv.Atoi(last)
				r.LHS = Redirectee{IsFD: true, FD: fd}
				argv = argv[:len(argv)-1]
			}
		}

		j := i + 1
		for j < len(toks) && toks[j].Type == token.EMPTY {
			j++
		}
		if j >= len(toks) || !toks[j].Flags.Has(token.WORD_LIKE) {
			return nil, nil, synf("syntax", "parse error near '"+t.Value+"'")
		}
		target := toks[j]

		switch t.Type {
		case token.OUT_AMP:
			if isAllDigits(target.Value) {
				fd, _ := strconv.Atoi(target.Value)
				r.RHS = Redirectee{IsFD: true, FD: fd}
			} else {
				r.BothErrOut = true
				r.RHS = Redirectee{Path: target.Value}
			}
		case token.IN_AMP:
			if !isAllDigits(target.Value) {
				return nil, nil, synf("syntax", "ambiguous redirect")
			}
			fd, _ := strconv.Atoi(target.Value)
			r.RHS = Redirectee{IsFD: true, FD: fd}
		default:
			r.RHS = Redirectee{Path: target.Value}
		}

		redirects = append(redirects, r)
		i = j + 1
	}
	return argv, redirects, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
