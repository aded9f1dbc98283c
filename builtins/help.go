package builtins

import "fmt"

// Doc is a built-in's usage documentation, grounded on the original's
// builtin_doc struct (msh_builtin.h): name, argument summary, one-line
// brief and optional long-form doc body.
type Doc struct {
	Name  string
	Args  string
	Brief string
	Doc   string
}

func (d Doc) usage() string {
	return fmt.Sprintf("Usage: %s %s", d.Name, d.Args)
}

// handleHelp recognizes -h/--help on every built-in per spec §4.13 and
// prints the built-in's documentation, mirroring handle_help's
// short-circuit return so the caller can `return 0` immediately.
func handleHelp(ctx *Context, doc Doc) bool {
	for _, a := range ctx.Argv[1:] {
		if a == "-h" || a == "--help" {
			fmt.Fprintln(ctx.out(), doc.Brief)
			if doc.Doc != "" {
				fmt.Fprintln(ctx.out())
				fmt.Fprintln(ctx.out(), doc.Doc)
			}
			fmt.Fprintln(ctx.out())
			fmt.Fprintln(ctx.out(), doc.usage())
			return true
		}
	}
	return false
}
