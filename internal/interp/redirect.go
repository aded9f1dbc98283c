package interp

import (
	"fmt"
	"os"

	"github.com/shelltoy/polysh/internal/ast"
)

// stdio bundles the three standard streams threaded through execution,
// replacing the original's STDIN_FILENO/STDOUT_FILENO/STDERR_FILENO
// trio with *os.File values so both the in-process builtin path and the
// os/exec external path can share one representation.
type stdio struct {
	in, out, err *os.File
}

// fileForFD maps one of the three tracked descriptor slots back onto an
// *os.File, the limited form of dup2(fd, ...) this implementation
// supports: only 0, 1 and 2 are ever valid redirect sources or
// duplication targets in practice for an interactive shell, and the
// redirection grammar in spec §4.9/§6 never names a descriptor above 2.
func (s stdio) fileForFD(fd int) (*os.File, bool) {
	switch fd {
	case 0:
		return s.in, true
	case 1:
		return s.out, true
	case 2:
		return s.err, true
	default:
		return nil, false
	}
}

func (s stdio) withFD(fd int, f *os.File) stdio {
	switch fd {
	case 0:
		s.in = f
	case 1:
		s.out = f
	case 2:
		s.err = f
	}
	return s
}

// resolveRedirects applies a simple command's parsed redirects on top of
// a base stdio triple, mirroring simple_command::do_redirects +
// redirect::do_redirect (msh_redirect.h): each redirect opens (or
// resolves) its right-hand side, then "dup2s" it onto the left-hand
// descriptor slot. Opened files are returned as closers so the caller
// can close them once the command that used them has finished.
func resolveRedirects(redirects []ast.Redirect, base stdio) (stdio, []*os.File, error) {
	cur := base
	var opened []*os.File

	for _, r := range redirects {
		rhsFile, err := openRedirectee(r, cur)
		if err != nil {
			for _, f := range opened {
				f.Close()
			}
			return stdio{}, nil, err
		}
		if rhsFile != nil && !isStdTriple(rhsFile, base) {
			opened = append(opened, rhsFile)
		}

		lhsFD := r.LHS.FD
		cur = cur.withFD(lhsFD, rhsFile)

		if r.BothErrOut {
			cur.err = cur.out
		}
	}
	return cur, opened, nil
}

func isStdTriple(f *os.File, base stdio) bool {
	return f == base.in || f == base.out || f == base.err
}

func openRedirectee(r ast.Redirect, cur stdio) (*os.File, error) {
	if r.RHS.IsFD {
		f, ok := cur.fileForFD(r.RHS.FD)
		if !ok {
			return nil, fmt.Errorf("invalid file descriptor: %d", r.RHS.FD)
		}
		return f, nil
	}

	var flags int
	switch r.Kind {
	case ast.RedirOut:
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case ast.RedirOutAppend:
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case ast.RedirIn:
		flags = os.O_RDONLY
	default:
		return nil, fmt.Errorf("unsupported redirect kind")
	}

	f, err := os.OpenFile(r.RHS.Path, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", r.RHS.Path, err)
	}
	return f, nil
}

func closeAll(files []*os.File) {
	for _, f := range files {
		f.Close()
	}
}
