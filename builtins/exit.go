package builtins

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shelltoy/polysh/internal/state"
)

var exitDoc = Doc{
	Name:  "exit",
	Args:  "[code] [-h|--help]",
	Brief: "Exit the shell",
	Doc: "Exits the shell with a status of code given as an argument.\n" +
		"If no argument is given, exits with a status of 0.",
}

// Exit implements `exit`, grounded on
// original_source/src/builtin/mexit.cpp. It never returns to the
// caller on the success paths, matching the original's noreturn exit().
func Exit(ctx *Context) int {
	if handleHelp(ctx, exitDoc) {
		return 0
	}
	if len(ctx.Argv) == 1 {
		os.Exit(0)
	}
	if len(ctx.Argv) > 2 {
		fmt.Fprintln(ctx.errOut(), "exit: wrong number of arguments")
		fmt.Fprintln(ctx.errOut(), exitDoc.usage())
		return 1
	}

	code, err := strconv.Atoi(ctx.Argv[1])
	if err != nil {
		fmt.Fprintf(ctx.errOut(), "exit: invalid argument: %s\n", ctx.Argv[1])
		os.Exit(state.ExitArgError)
	}
	os.Exit(code)
	return 0
}
