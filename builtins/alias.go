package builtins

import (
	"fmt"
	"strings"
)

var aliasDoc = Doc{
	Name:  "alias",
	Args:  "[name[=value] ...] [-h|--help]",
	Brief: "Create or print aliases",
	Doc: "Without arguments, prints all aliases.\n\n" +
		"If arguments are given, creates an alias for each argument of the\n" +
		"form NAME=VALUE, or prints the value of the alias with the given\n" +
		"name.",
}

// Alias implements `alias`, grounded on
// original_source/src/builtin/malias.cpp.
func Alias(ctx *Context) int {
	if handleHelp(ctx, aliasDoc) {
		return 0
	}

	if len(ctx.Argv) == 1 {
		for _, name := range ctx.Sh.Aliases.Names() {
			val, _ := ctx.Sh.Aliases.Get(name)
			fmt.Fprintf(ctx.out(), "alias %s='%s'\n", name, val)
		}
		return 0
	}

	for _, arg := range ctx.Argv[1:] {
		name, value, hasValue := strings.Cut(arg, "=")
		if !hasValue {
			val, ok := ctx.Sh.Aliases.Get(name)
			if !ok {
				fmt.Fprintf(ctx.errOut(), "alias: %s: not found\n", name)
				return 1
			}
			fmt.Fprintf(ctx.out(), "alias %s='%s'\n", name, val)
			continue
		}
		ctx.Sh.Aliases.Set(name, value)
	}
	return 0
}
