// Package interp is the executor of spec §4.10–§4.14: it walks the
// Command tree produced by internal/ast, runs the per-leaf expansion
// pipeline, and dispatches to built-ins or external processes.
package interp

import (
	"os"

	"github.com/shelltoy/polysh/builtins"
	"github.com/shelltoy/polysh/internal/jobs"
	"github.com/shelltoy/polysh/internal/state"
)

// Runner bundles everything the executor needs across a shell's
// lifetime, standing in for the original's file-scope globals
// (processes, exec_path, exec_line_no) collected into one value per
// spec §9's guidance against hidden global state.
type Runner struct {
	Sh     *state.Shell
	Jobs   *jobs.Table
	Reaper *jobs.Reaper
}

// New builds a Runner with a fresh shell state and job table, starting
// the background SIGCHLD reaper immediately (mirrors init_job_control
// being called once at shell startup).
func New() *Runner {
	sh := state.New()
	table := jobs.NewTable()
	reaper := jobs.NewReaper(table)
	reaper.Start()
	return &Runner{Sh: sh, Jobs: table, Reaper: reaper}
}

func (rn *Runner) stdioStd() stdio {
	return stdio{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// DrainCompletedJobs prints and purges finished ASYNC jobs, called
// before each new interactive prompt (spec §4.14).
func (rn *Runner) DrainCompletedJobs() {
	for _, line := range rn.Jobs.Drain() {
		os.Stdout.WriteString(line + "\n")
	}
}

// builtinContext adapts a Runner+argv+resolved stdio into the builtins
// package's Context, wiring RunScript back through the Runner so
// `source` can recurse without builtins importing interp (which would
// cycle, since interp already imports builtins to dispatch them).
func (rn *Runner) builtinContext(argv []string, io stdio) *builtins.Context {
	return &builtins.Context{
		Argv:      argv,
		Sh:        rn.Sh,
		Jobs:      rn.Jobs,
		RunScript: rn.RunScript,
		Stdin:     io.in,
		Stdout:    io.out,
		Stderr:    io.err,
	}
}
