package builtins

import "fmt"

var errnoDoc = Doc{
	Name:  "errno",
	Args:  "[-h|--help]",
	Brief: "Print error code of the last command",
}

// Errno implements `errno`, grounded on
// original_source/src/builtin/merrno.cpp: print the numeric last-errno,
// nothing else.
func Errno(ctx *Context) int {
	if handleHelp(ctx, errnoDoc) {
		return 0
	}
	if len(ctx.Argv) > 1 {
		fmt.Fprintln(ctx.errOut(), "errno: wrong number of arguments")
		fmt.Fprintln(ctx.errOut(), errnoDoc.usage())
		return 1
	}
	fmt.Fprintln(ctx.out(), ctx.Sh.Errno())
	return 0
}
