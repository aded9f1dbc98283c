package builtins

// Handler is a built-in's entry point. Unlike the original's bare
// `(argc, char**) -> int`, it receives a Context so redirected
// stdio and shared shell state are explicit rather than ambient.
type Handler func(ctx *Context) int

// Registry is the name -> handler table of spec §4.13, populated once
// at package init, mirroring builtin_commands in msh_builtin.cpp.
var Registry = map[string]Handler{
	"errno":   Errno,
	"pwd":     Pwd,
	"cd":      Cd,
	"exit":    Exit,
	"echo":    Echo,
	"export":  Export,
	"source":  Source,
	".":       Source,
	"alias":   Alias,
	"unalias": Unalias,
	"jobs":    Jobs,
}

// IsBuiltin reports whether name names a registered built-in.
func IsBuiltin(name string) bool {
	_, ok := Registry[name]
	return ok
}

// Run looks up and invokes name's handler. Callers must check
// IsBuiltin first; Run panics on an unknown name since the executor
// never calls it without having checked.
func Run(name string, ctx *Context) int {
	h, ok := Registry[name]
	if !ok {
		panic("builtins: unknown builtin " + name)
	}
	return h(ctx)
}
