package interp

import (
	"github.com/shelltoy/polysh/internal/ast"
	"github.com/shelltoy/polysh/internal/expand"
	"github.com/shelltoy/polysh/internal/lexer"
)

// parseLine runs the line-level half of the pipeline: lex the raw
// input, expand aliases (which can introduce new connectors and so must
// run before the tree is split, per split_commands calling
// expand_aliases first), then split into a Command tree. Everything
// else (§4.3–§4.7, §4.9) runs per leaf at execution time in
// executeSimple, since it has to observe the side effects of commands
// that already ran earlier in the same tree.
func (rn *Runner) parseLine(input string) (*ast.Command, error) {
	toks, err := lexer.Lex(input)
	if err != nil {
		return nil, err
	}

	toks, err = expand.ExpandAliases(toks, rn.Sh.Aliases)
	if err != nil {
		return nil, err
	}

	return ast.Split(toks)
}

// RunLine parses and executes one line of interactive or scripted
// input, returning its exit status. Parse errors are reported and
// treated as a failed line rather than aborting the caller, per spec
// §7: "the command pipeline for the current input line is abandoned,
// the next prompt is issued."
func (rn *Runner) RunLine(input string) int {
	cmd, err := rn.parseLine(input)
	if err != nil {
		reportErrorf(rn.Sh, "%v", err)
		rn.Sh.SetErrno(1)
		return 1
	}
	return rn.Execute(cmd, rn.stdioStd(), 0)
}
