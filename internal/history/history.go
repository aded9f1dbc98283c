// Package history persists interactive command history across sessions
// (spec §1's "line editing/history [as an] external collaborator").
// Unlike a plain append-on-each-line file, the whole history is kept in
// memory during the session and flushed to disk as one atomic snapshot,
// so a process killed mid-write can never leave a torn last line behind
// for the next session's loader to choke on.
package history

import (
	"bufio"
	"os"

	"github.com/google/renameio/v2"
)

// File is an in-memory command history backed by an on-disk snapshot
// file.
type File struct {
	path  string
	lines []string
}

// Open loads path's existing contents, if any. A missing or unreadable
// file is not an error: history simply starts empty.
func Open(path string) *File {
	h := &File{path: path}
	if path == "" {
		return h
	}
	f, err := os.Open(path)
	if err != nil {
		return h
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		h.lines = append(h.lines, sc.Text())
	}
	return h
}

// Lines returns the history loaded at Open time, oldest first.
func (h *File) Lines() []string {
	return h.lines
}

// Add appends line to the in-memory history. Blank lines are not
// recorded.
func (h *File) Add(line string) {
	if line == "" {
		return
	}
	h.lines = append(h.lines, line)
}

// Flush writes the full history to disk via a temp-file-plus-rename,
// so a reader (or a crash) never observes a partially written file.
func (h *File) Flush() error {
	if h.path == "" {
		return nil
	}
	var buf []byte
	for _, l := range h.lines {
		buf = append(buf, l...)
		buf = append(buf, '\n')
	}
	return renameio.WriteFile(h.path, buf, 0o600)
}
