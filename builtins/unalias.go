package builtins

import "fmt"

var unaliasDoc = Doc{
	Name:  "unalias",
	Args:  "<alias>... | -a [-h|--help]",
	Brief: "Remove aliases",
	Doc:   "Removes aliases from the alias table. `-a` clears the whole table.",
}

// Unalias implements `unalias`, grounded on
// original_source/src/builtin/munalias.cpp, with `-a` supplemented from
// the original per SPEC_FULL.md §C.4.
func Unalias(ctx *Context) int {
	if handleHelp(ctx, unaliasDoc) {
		return 0
	}
	if len(ctx.Argv) == 1 {
		fmt.Fprintln(ctx.errOut(), "unalias: wrong number of arguments")
		fmt.Fprintln(ctx.errOut(), unaliasDoc.usage())
		return 1
	}
	if len(ctx.Argv) == 2 && ctx.Argv[1] == "-a" {
		ctx.Sh.Aliases.Clear()
		return 0
	}

	for _, name := range ctx.Argv[1:] {
		if !ctx.Sh.Aliases.Unset(name) {
			fmt.Fprintf(ctx.errOut(), "unalias: %s: not found\n", name)
			return 1
		}
	}
	return 0
}
