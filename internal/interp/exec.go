package interp

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/shelltoy/polysh/builtins"
	"github.com/shelltoy/polysh/internal/ast"
	"github.com/shelltoy/polysh/internal/expand"
	"github.com/shelltoy/polysh/internal/jobs"
	"github.com/shelltoy/polysh/internal/state"
)

// Execute runs cmd (either leaf) with the given stdio and flags,
// dispatching by variant per spec §4.10.
func (rn *Runner) Execute(cmd *ast.Command, io stdio, flags ast.Flags) int {
	if cmd == nil {
		return state.ExitSuccess
	}
	if cmd.IsSimple() {
		return rn.executeSimple(cmd.Simple, io, flags)
	}
	return rn.executeConnection(cmd.Connection, io, flags)
}

// executeSimple implements spec §4.10's simple-command path: run the
// per-leaf expansion pipeline (§4.3–§4.7, §4.9), then either dispatch a
// built-in in-process or fork/exec.
func (rn *Runner) executeSimple(sc *ast.SimpleCommand, io stdio, flags ast.Flags) int {
	toks := sc.Tokens
	toks = expand.ExpandVars(toks, rn.Sh)

	var err error
	toks, err = expand.ExpandComSubs(toks, rn.Sh, rn)
	if err != nil {
		reportErrorf(rn.Sh, "command substitution: %v", err)
		rn.Sh.SetErrno(state.ExitUnknownError)
		return state.ExitUnknownError
	}

	toks = expand.CaptureAssignments(toks, rn.Sh)
	toks, err = expand.ExpandGlobs(toks)
	if err != nil {
		reportErrorf(rn.Sh, "%v", err)
		rn.Sh.SetErrno(state.ExitGenericFailure)
		return state.ExitGenericFailure
	}
	toks = expand.Coalesce(toks)

	argv, redirects, err := ast.ParseRedirects(toks)
	if err != nil {
		reportErrorf(rn.Sh, "%v", err)
		rn.Sh.SetErrno(state.ExitGenericFailure)
		return state.ExitGenericFailure
	}

	if len(argv) == 0 {
		// Only assignments, or nothing at all: the side effect on the
		// variable table (already applied above) is all that mattered.
		rn.Sh.SetErrno(state.ExitSuccess)
		return state.ExitSuccess
	}

	if builtins.IsBuiltin(argv[0]) {
		flags |= ast.Builtin
	}

	code := rn.execSimple(argv, redirects, io, flags)
	rn.Sh.SetErrno(code)
	return code
}

// execSimple mirrors msh_exec_simple: decide whether the command can
// run in-process or needs a forked child, apply redirects, and run it.
func (rn *Runner) execSimple(argv []string, redirects []ast.Redirect, io stdio, flags ast.Flags) int {
	isBuiltin := flags.Has(ast.Builtin)
	isAsync := flags.Has(ast.Async)

	toFork := io.in != os.Stdin || io.out != os.Stdout || !isBuiltin || isAsync

	if !toFork {
		resolved, opened, err := resolveRedirects(redirects, io)
		if err != nil {
			reportErrorf(rn.Sh, "%v", err)
			return state.ExitUnknownError
		}
		status := builtins.Run(argv[0], rn.builtinContext(argv, resolved))
		closeAll(opened)
		return status
	}

	return rn.forkAndRun(argv, redirects, io, flags)
}

// forkAndRun starts argv as a child process (built-in or external),
// registers its PID in the job table, and either returns immediately
// (ASYNC/ForkNoWait) or blocks for it, mirroring msh_exec_simple's
// fork()-based parent/child split. Go cannot safely fork() a running
// multi-threaded program and keep executing arbitrary Go code in the
// child, so a built-in reached with toFork set runs in this process
// instead of a real child (synchronously, or on its own goroutine when
// ASYNC is set); an external program is
// started with os/exec, which performs the real fork+exec under the
// hood.
func (rn *Runner) forkAndRun(argv []string, redirects []ast.Redirect, io stdio, flags ast.Flags) int {
	resolved, opened, err := resolveRedirects(redirects, io)
	if err != nil {
		reportErrorf(rn.Sh, "%v", err)
		closeAll(opened)
		return state.ExitUnknownError
	}
	if flags.Has(ast.PipeStderr) {
		resolved.err = resolved.out
	}

	isBuiltin := flags.Has(ast.Builtin)
	isAsync := flags.Has(ast.Async)

	if isBuiltin {
		ctx := rn.builtinContext(argv, resolved)
		if isAsync {
			// A built-in has no real child PID to track; Go cannot fork
			// the running process to give it one. Run it on its own
			// goroutine so the shell doesn't block, matching ASYNC's
			// "return immediately" contract without a process-table entry.
			fmt.Fprintf(os.Stdout, "[%d] (builtin)\n", rn.Jobs.Running()+1)
			go func() {
				defer closeAll(opened)
				builtins.Run(argv[0], ctx)
			}()
			return state.ExitSuccess
		}
		defer closeAll(opened)
		return builtins.Run(argv[0], ctx)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = rn.Sh.Environ()
	cmd.Stdin = resolved.in
	cmd.Stdout = resolved.out
	cmd.Stderr = resolved.err

	startErr := cmd.Start()
	closeAll(opened)
	if startErr != nil {
		return rn.reportExecFailure(argv[0], startErr)
	}

	pid := cmd.Process.Pid
	procFlags := jobs.Flags(0)
	if isAsync {
		procFlags |= jobs.Async
	}
	rn.Jobs.Add(pid, procFlags, argv)

	if isAsync {
		fmt.Fprintf(os.Stdout, "[%d] %d\n", rn.Jobs.Running(), pid)
		return state.ExitSuccess
	}
	if flags.Has(ast.ForkNoWait) {
		return state.ExitSuccess
	}

	status, waitErr := jobs.WaitForeground(pid)
	rn.Jobs.Remove(pid)
	if waitErr != nil {
		reportErrorf(rn.Sh, "%v", waitErr)
		return state.ExitUnknownError
	}
	return status
}

// reportExecFailure classifies an os/exec start failure the way
// msh_execve classifies execve/execvpe failures: ENOENT -> "Command not
// found" (127), a directory target -> "Is a directory" (128), anything
// else -> strerror text (128).
func (rn *Runner) reportExecFailure(name string, err error) int {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		if errors.Is(pathErr.Err, syscall.ENOENT) || errors.Is(err, exec.ErrNotFound) {
			reportErrorf(rn.Sh, "Command not found: %s", name)
			return state.ExitCommandNotFound
		}
		if errors.Is(pathErr.Err, syscall.EISDIR) {
			reportErrorf(rn.Sh, "%s: Is a directory", name)
			return state.ExitUnknownError
		}
	}
	if errors.Is(err, exec.ErrNotFound) {
		reportErrorf(rn.Sh, "Command not found: %s", name)
		return state.ExitCommandNotFound
	}
	reportErrorf(rn.Sh, "%s: %v", name, err)
	return state.ExitUnknownError
}

// RunCapture implements expand.ComSubRunner: parse body as a full input
// line, execute it with stdout funneled into a pipe (FORCE_PIPE, spec
// §4.4), and return whatever was written before EOF.
func (rn *Runner) RunCapture(body string) (string, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}

	cmd, parseErr := rn.parseLine(body)
	if parseErr != nil {
		w.Close()
		r.Close()
		return "", parseErr
	}

	done := make(chan struct{})
	var out strings.Builder
	go func() {
		buf := make([]byte, 4096)
		for {
			n, rerr := r.Read(buf)
			if n > 0 {
				out.Write(buf[:n])
			}
			if rerr != nil {
				break
			}
		}
		r.Close()
		close(done)
	}()

	rn.Execute(cmd, stdio{in: os.Stdin, out: w, err: os.Stderr}, ast.ForcePipe)
	w.Close()
	<-done

	return out.String(), nil
}

