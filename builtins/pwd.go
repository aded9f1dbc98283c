package builtins

import (
	"fmt"
	"os"
)

var pwdDoc = Doc{
	Name:  "pwd",
	Args:  "[-h|--help]",
	Brief: "Print the current working directory",
	Doc:   "Returns 1 if any arguments are specified or getcwd() fails, 0 otherwise.",
}

// Pwd implements `pwd`, grounded on original_source/src/builtin/mpwd.cpp.
func Pwd(ctx *Context) int {
	if handleHelp(ctx, pwdDoc) {
		return 0
	}
	if len(ctx.Argv) > 1 {
		fmt.Fprintln(ctx.errOut(), "pwd: wrong number of arguments")
		fmt.Fprintln(ctx.errOut(), pwdDoc.usage())
		return 1
	}
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(ctx.errOut(), "pwd: %v\n", err)
		return 1
	}
	fmt.Fprintln(ctx.out(), cwd)
	return 0
}
