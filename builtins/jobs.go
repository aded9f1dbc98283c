package builtins

import "fmt"

var jobsDoc = Doc{
	Name:  "jobs",
	Args:  "[-h|--help]",
	Brief: "Display information about background jobs",
}

// Jobs implements `jobs`, grounded on
// original_source/src/builtin/mjobs.cpp's print_processes call, with the
// `[N]+  Status  command` column layout supplemented from the original
// per SPEC_FULL.md §C.5.
func Jobs(ctx *Context) int {
	if handleHelp(ctx, jobsDoc) {
		return 0
	}
	if len(ctx.Argv) > 1 {
		fmt.Fprintln(ctx.errOut(), "jobs: wrong number of arguments")
		fmt.Fprintln(ctx.errOut(), jobsDoc.usage())
		return 1
	}

	for i, p := range ctx.Jobs.Snapshot() {
		fmt.Fprintf(ctx.out(), "[%d]+  %-10s %s\n", i+1, p.Status, p.Command)
	}
	return 0
}
