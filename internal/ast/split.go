package ast

import "github.com/shelltoy/polysh/internal/token"

// Split performs the single linear scan of spec §4.8, building a strictly
// left-leaning binary tree of commands joined by connectors. Testable
// property 4 (spec §8): the tree produced by N separators has depth
// exactly N on its left spine.
func Split(toks []token.Token) (*Command, error) {
	if err := CheckSyntax(toks); err != nil {
		return nil, err
	}

	var root *Command
	var pending token.Token
	var current []token.Token

	freeze := func(ts []token.Token) *Command {
		cp := make([]token.Token, len(ts))
		copy(cp, ts)
		return &Command{Simple: &SimpleCommand{Tokens: cp}}
	}

	for _, t := range toks {
		if t.Flags.Has(token.COMMAND_SEPARATOR) {
			right := freeze(current)
			if root == nil {
				root = right
			} else {
				root = &Command{Connection: &ConnectionCommand{
					Connector: pending,
					Left:      root,
					Right:     right,
				}}
			}
			pending = t
			current = nil
			continue
		}
		current = append(current, t)
	}

	right := freeze(current)
	if root == nil {
		root = right
	} else {
		root = &Command{Connection: &ConnectionCommand{
			Connector: pending,
			Left:      root,
			Right:     right,
		}}
	}
	return root, nil
}
