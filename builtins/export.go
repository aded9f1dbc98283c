package builtins

import (
	"fmt"
	"strings"
)

var exportDoc = Doc{
	Name:  "export",
	Args:  "[name[=value] ...] [-h|--help]",
	Brief: "Mark variables for export to child processes",
	Doc: "With no arguments, lists every exported variable as\n" +
		"`declare -x NAME=value`. NAME=VALUE both assigns and exports;\n" +
		"a bare NAME exports the variable's current value, if any.",
}

// Export implements `export`, grounded on
// original_source/src/builtin/mexport.cpp, with the no-argument listing
// form supplemented from the original per SPEC_FULL.md §C.7.
func Export(ctx *Context) int {
	if handleHelp(ctx, exportDoc) {
		return 0
	}

	if len(ctx.Argv) == 1 {
		for _, name := range ctx.Sh.Vars.Names() {
			if !ctx.Sh.Vars.IsExported(name) {
				continue
			}
			val, _ := ctx.Sh.Vars.Get(name)
			fmt.Fprintf(ctx.out(), "declare -x %s=%s\n", name, val)
		}
		return 0
	}

	for _, arg := range ctx.Argv[1:] {
		name, value, hasValue := strings.Cut(arg, "=")
		if hasValue {
			ctx.Sh.Vars.Set(name, value)
		}
		ctx.Sh.Vars.Export(name)
	}
	return 0
}
