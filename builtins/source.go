package builtins

import "fmt"

var sourceDoc = Doc{
	Name:  "source",
	Args:  "<file> [-h|--help]",
	Brief: "Execute commands from a file in the current shell",
	Doc:   "Reads commands from a file line by line and executes them in the current shell.",
}

// Source implements `source` (and its `.` alias), grounded on
// original_source/src/builtin/msource.cpp. The actual line-by-line
// execution is delegated to ctx.RunScript, implemented by
// internal/interp.Runner, to avoid builtins importing interp.
func Source(ctx *Context) int {
	if handleHelp(ctx, sourceDoc) {
		return 0
	}
	if len(ctx.Argv) != 2 {
		fmt.Fprintln(ctx.errOut(), "source: wrong number of arguments")
		fmt.Fprintln(ctx.errOut(), sourceDoc.usage())
		return 1
	}
	return ctx.RunScript(ctx.Argv[1])
}
