// polysh is a POSIX-flavored interactive shell: lexer, expander, parser
// and executor wired together per this repository's internal packages.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/shelltoy/polysh/internal/history"
	"github.com/shelltoy/polysh/internal/interp"
	"github.com/shelltoy/polysh/internal/promptexp"
)

// historyPath returns $HOME/.polysh_history, or "" if $HOME is unset
// (history persistence is then silently disabled for the session).
func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return home + "/.polysh_history"
}

var command = flag.String("c", "", "command to be executed")

func main() {
	flag.Parse()
	os.Exit(run())
}

// run mirrors gosh's runAll dispatch: `-c` command, a script path
// argument, or interactive mode, in that order (spec §6: "Two modes:
// shell (no args) ... shell <file> [args...]").
func run() int {
	rn := interp.New()

	switch {
	case *command != "":
		return rn.RunLine(*command)
	case flag.NArg() > 0:
		return rn.RunScript(flag.Arg(0))
	case term.IsTerminal(int(os.Stdin.Fd())):
		return runInteractive(rn)
	default:
		return runPiped(rn)
	}
}

// runInteractive drives the read-eval-print loop over
// github.com/chzyer/readline, the pack's line-editing library, standing
// in for the original's GNU readline-backed generate_prompt loop (spec
// §1 keeps line editing/history outside the core pipeline).
func runInteractive(rn *interp.Runner) int {
	hist := history.Open(historyPath())

	rl, err := readline.NewEx(&readline.Config{Prompt: promptexp.Render(0)})
	if err != nil {
		fmt.Fprintln(os.Stderr, "polysh:", err)
		return 1
	}
	defer rl.Close()
	for _, l := range hist.Lines() {
		rl.SaveHistory(l)
	}
	defer hist.Flush()

	for {
		rn.DrainCompletedJobs()
		rl.SetPrompt(promptexp.Render(rn.Sh.Errno()))

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return rn.Sh.Errno()
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "polysh:", err)
			return 1
		}
		if line == "" {
			continue
		}
		hist.Add(line)
		rl.SaveHistory(line)
		rn.RunLine(line)
	}
}

// runPiped handles non-interactive stdin (e.g. `polysh < script.sh`),
// treating it as an unnamed script: line by line, never aborting on a
// single line's failure.
func runPiped(rn *interp.Runner) int {
	var last int
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		last = rn.RunLine(sc.Text())
	}
	return last
}
