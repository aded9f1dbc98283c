package interp

import (
	"os"

	"github.com/shelltoy/polysh/internal/ast"
	"github.com/shelltoy/polysh/internal/jobs"
	"github.com/shelltoy/polysh/internal/token"
)

// executeConnection dispatches a ConnectionCommand by connector type,
// mirroring connection_command::execute's switch (msh_command.h).
func (rn *Runner) executeConnection(cc *ast.ConnectionCommand, io stdio, flags ast.Flags) int {
	if flags.Has(ast.ForcePipe) {
		return rn.executeForced(cc, io, flags)
	}

	switch cc.Connector.Type {
	case token.SEMICOLON:
		return rn.executeSequence(cc, flags)
	case token.AMP:
		return rn.executeBackground(cc, flags)
	case token.PIPE:
		return rn.executePipe(cc, io, flags, false)
	case token.PIPE_AMP:
		return rn.executePipe(cc, io, flags, true)
	case token.AND:
		return rn.executeAndOr(cc, io, flags, true)
	case token.OR:
		return rn.executeAndOr(cc, io, flags, false)
	default:
		reportErrorf(rn.Sh, "unsupported connector %s", cc.Connector.Type)
		return 128
	}
}

// executeForced propagates FORCE_PIPE and the connection's own stdio into
// both legs regardless of connector, used by command substitution to
// funnel the whole right-hand side of the substituted line into the
// capture pipe (spec §4.10's FORCE_PIPE note). The connector's own
// semantics still apply: `&&`/`||` gate the right leg and `&` runs the
// left leg ASYNC.
func (rn *Runner) executeForced(cc *ast.ConnectionCommand, io stdio, flags ast.Flags) int {
	switch cc.Connector.Type {
	case token.PIPE, token.PIPE_AMP:
		return rn.executePipe(cc, io, flags, cc.Connector.Type == token.PIPE_AMP)
	case token.AND:
		return rn.executeAndOr(cc, io, flags, true)
	case token.OR:
		return rn.executeAndOr(cc, io, flags, false)
	case token.AMP:
		rn.Execute(cc.Left, io, flags|ast.Async)
		return rn.Execute(cc.Right, io, flags&^ast.Async)
	default:
		rn.Execute(cc.Left, io, flags)
		return rn.Execute(cc.Right, io, flags)
	}
}

// executeSequence implements `;`: left then right with inherited
// stdio, result is rhs's result, ASYNC propagates to rhs only.
func (rn *Runner) executeSequence(cc *ast.ConnectionCommand, flags ast.Flags) int {
	io := rn.stdioStd()
	rn.Execute(cc.Left, io, flags&^ast.Async)
	rhsFlags := flags & ast.Async
	return rn.Execute(cc.Right, io, rhsFlags)
}

// executeBackground implements `&`: left forced async, right possibly
// inheriting the node's own ASYNC flag.
func (rn *Runner) executeBackground(cc *ast.ConnectionCommand, flags ast.Flags) int {
	io := rn.stdioStd()
	rn.Execute(cc.Left, io, flags|ast.Async)
	rhsFlags := flags & ast.Async
	return rn.Execute(cc.Right, io, rhsFlags)
}

// executePipe implements `|`/`|&`: create a pipe, run the left leg with
// FORK_NO_WAIT and output into the write end, run the right leg reading
// from the read end, then (unless FORK_NO_WAIT/ASYNC is set on this
// node itself) reap any children the legs left behind.
func (rn *Runner) executePipe(cc *ast.ConnectionCommand, io stdio, flags ast.Flags, propagateStderr bool) int {
	r, w, err := os.Pipe()
	if err != nil {
		reportErrorf(rn.Sh, "%v", err)
		return 128
	}

	leftFlags := flags | ast.ForkNoWait
	if propagateStderr {
		leftFlags |= ast.PipeStderr
	}
	rn.Execute(cc.Left, stdio{in: io.in, out: w, err: io.err}, leftFlags)
	w.Close()

	result := rn.Execute(cc.Right, stdio{in: r, out: io.out, err: io.err}, flags)
	r.Close()

	if !flags.Has(ast.ForkNoWait) && !flags.Has(ast.Async) {
		rn.reapAll()
	}
	return result
}

// executeAndOr implements `&&` (wantZero=true) and `||`
// (wantZero=false): the left leg must have a known exit code before
// deciding on the right, so it is always waited for unless it is
// itself ASYNC.
func (rn *Runner) executeAndOr(cc *ast.ConnectionCommand, io stdio, flags ast.Flags, wantZero bool) int {
	leftCode := rn.Execute(cc.Left, io, flags)
	runRight := leftCode == 0 == wantZero
	if !runRight {
		return leftCode
	}
	return rn.Execute(cc.Right, io, flags)
}

// reapAll blocks collecting every remaining child, mirroring
// reap_children, used at the end of a synchronous pipeline.
func (rn *Runner) reapAll() {
	for _, p := range rn.Jobs.Snapshot() {
		if p.Status == jobs.Running {
			jobs.WaitForeground(p.PID)
			rn.Jobs.Remove(p.PID)
		}
	}
}
