package interp

import (
	"fmt"
	"os"

	"github.com/shelltoy/polysh/internal/state"
)

// reportError implements spec §7's diagnostic format: a `path:lineno:`
// prefix when a script is executing, then a fixed `polysh: ` program
// tag, matching original_source/src/internal/msh_error.cpp's
// error_log()+msh_error() pair verbatim in shape, renamed to this
// project's program name.
func reportError(sh *state.Shell, msg string) {
	if sh.ExecLine > 0 {
		fmt.Fprintf(os.Stderr, "%s:%d: ", sh.ExecPath, sh.ExecLine)
	}
	fmt.Fprintf(os.Stderr, "polysh: %s\n", msg)
}

// reportErrorf is reportError with fmt.Sprintf-style formatting.
func reportErrorf(sh *state.Shell, format string, args ...any) {
	reportError(sh, fmt.Sprintf(format, args...))
}
