package interp

import (
	"bufio"
	"fmt"
	"os"

	"github.com/shelltoy/polysh/internal/fileutil"
	"github.com/shelltoy/polysh/internal/state"
)

// RunScript implements spec §4.12: read path line by line, parse and
// execute each line exactly as interactive input, publishing
// (ExecPath, ExecLine) for the error logger. A failing line does not
// abort the remaining ones; only last-errno is updated (spec §7,
// SPEC_FULL.md §C.8), grounded on msh_exec_script's try/catch-per-line
// loop.
func (rn *Runner) RunScript(path string) int {
	if info, statErr := os.Lstat(path); statErr == nil {
		if fileutil.Classify(info) == fileutil.NotScript {
			fmt.Fprintf(os.Stderr, "polysh: %s: not a regular file\n", path)
			return state.ExitUnknownError
		}
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "polysh: %s: %v\n", path, err)
		return 1
	}
	defer f.Close()

	savedPath, savedLine := rn.Sh.ExecPath, rn.Sh.ExecLine
	rn.Sh.ExecPath = path
	rn.Sh.ExecLine = 0
	defer func() {
		rn.Sh.ExecPath = savedPath
		rn.Sh.ExecLine = savedLine
	}()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		rn.Sh.ExecLine++
		rn.RunLine(sc.Text())
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "polysh: %s: %v\n", path, err)
		return state.ExitUnknownError
	}
	return state.ExitSuccess
}
