package builtins

import (
	"fmt"
	"os"
)

var cdDoc = Doc{
	Name:  "cd",
	Args:  "[path|-] [-h|--help]",
	Brief: "Change working directory",
	Doc: "With no argument, changes to $HOME. `cd -` changes to $OLDPREV\n" +
		"(the previous directory) and prints the new directory.\n" +
		"Sets OLDPREV to the prior directory on every successful change.",
}

// Cd implements `cd`, grounded on original_source/src/builtin/mcd.cpp,
// supplemented per SPEC_FULL.md §C.6 with bare `cd` and `cd -` support
// carried over from the original's broader cd semantics.
func Cd(ctx *Context) int {
	if handleHelp(ctx, cdDoc) {
		return 0
	}
	if len(ctx.Argv) > 2 {
		fmt.Fprintln(ctx.errOut(), "cd: wrong number of arguments")
		fmt.Fprintln(ctx.errOut(), cdDoc.usage())
		return 1
	}

	var target string
	switch {
	case len(ctx.Argv) == 1:
		home, _ := ctx.Sh.Lookup("HOME")
		if home == "" {
			fmt.Fprintln(ctx.errOut(), "cd: HOME not set")
			return 1
		}
		target = home
	case ctx.Argv[1] == "-":
		prev, ok := ctx.Sh.Lookup("OLDPREV")
		if !ok || prev == "" {
			fmt.Fprintln(ctx.errOut(), "cd: OLDPREV not set")
			return 1
		}
		target = prev
	default:
		target = ctx.Argv[1]
	}

	cur, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(ctx.errOut(), "cd: %v\n", err)
		return 1
	}

	if err := os.Chdir(target); err != nil {
		fmt.Fprintf(ctx.errOut(), "cd: %v: %s\n", err, target)
		return 1
	}

	ctx.Sh.Vars.Set("OLDPREV", cur)
	if len(ctx.Argv) == 2 && ctx.Argv[1] == "-" {
		fmt.Fprintln(ctx.out(), target)
	}
	return 0
}
