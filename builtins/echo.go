package builtins

import (
	"fmt"
	"strings"
)

var echoDoc = Doc{
	Name:  "echo",
	Args:  "[args] [-h|--help]",
	Brief: "Write arguments to the standard output",
	Doc:   "Arguments are separated by a single space character.",
}

// Echo implements `echo`, grounded on
// original_source/src/builtin/mecho.cpp. Unlike the other built-ins, an
// argument that merely looks like `-h`/`--help` among other words is
// still treated literally if it fails the strict help parse — the
// original swallows the parse exception and falls through to printing.
func Echo(ctx *Context) int {
	if len(ctx.Argv) == 2 && (ctx.Argv[1] == "-h" || ctx.Argv[1] == "--help") {
		if handleHelp(ctx, echoDoc) {
			return 0
		}
	}
	fmt.Fprintln(ctx.out(), strings.Join(ctx.Argv[1:], " "))
	return 0
}
