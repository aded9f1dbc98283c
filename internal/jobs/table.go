// Package jobs tracks background processes started with trailing `&`,
// mirroring the original shell's simplest-possible job control: process
// tracking and printing only, no process groups or foreground/background
// switching (spec §6).
package jobs

import (
	"fmt"
	"strings"
	"sync"
)

// Status is a process's last known run state.
type Status int

const (
	Running Status = iota
	Stopped
	Done
)

func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Stopped:
		return "Stopped"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// Flags mirrors the fork/wait flags a command carried when it was
// launched, so completed-job reporting can tell an explicit background
// job (`cmd &`) apart from an ordinary synchronously-waited child.
type Flags int

const (
	Async Flags = 1 << iota
)

// Process is one tracked child, keyed by PID in Table.
type Process struct {
	PID     int
	Status  Status
	Flags   Flags
	Command string
}

// Table is the process-id-keyed job table of spec §6, insertion-ordered
// for stable `jobs` listing output. Grounded on
// original_source/src/internal/msh_jobs.cpp's global `processes` map,
// reshaped into a mutex-guarded struct since the original relies on a
// single-threaded signal handler where Go instead runs the reaper on its
// own goroutine (see reaper.go).
type Table struct {
	mu    sync.Mutex
	order []int
	procs map[int]*Process
}

func NewTable() *Table {
	return &Table{procs: make(map[int]*Process)}
}

// Add registers a freshly started child, mirroring add_process.
func (t *Table) Add(pid int, flags Flags, args []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.procs[pid]; exists {
		return
	}
	t.order = append(t.order, pid)
	t.procs[pid] = &Process{
		PID:     pid,
		Status:  Running,
		Flags:   flags,
		Command: strings.Join(args, " "),
	}
}

// Remove drops a process entirely, mirroring remove_process. Used once a
// foreground wait has collected its exit status.
func (t *Table) Remove(pid int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.removeLocked(pid)
}

func (t *Table) removeLocked(pid int) {
	if _, ok := t.procs[pid]; !ok {
		return
	}
	delete(t.procs, pid)
	for i, p := range t.order {
		if p == pid {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// SetStatus records a status transition observed by the reaper, mirroring
// set_process_status.
func (t *Table) SetStatus(pid int, status Status) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if p, ok := t.procs[pid]; ok {
		p.Status = status
	}
}

// Lookup reports whether pid is still tracked, and its snapshot if so.
func (t *Table) Lookup(pid int) (Process, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.procs[pid]
	if !ok {
		return Process{}, false
	}
	return *p, true
}

// Running counts processes still in the Running state, mirroring
// no_background_processes.
func (t *Table) Running() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, p := range t.procs {
		if p.Status == Running {
			n++
		}
	}
	return n
}

// Snapshot returns every tracked process in insertion order, mirroring
// print_processes's iteration (the `jobs` builtin formats this further).
func (t *Table) Snapshot() []Process {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Process, 0, len(t.order))
	for _, pid := range t.order {
		out = append(out, *t.procs[pid])
	}
	return out
}

// FormatLine renders one job-table row in the `[n]\tStatus\tcommand`
// shape original_source prints from print_processes/print_completed_processes.
func FormatLine(n int, p Process) string {
	return fmt.Sprintf("[%d]\t%s\t%s", n, p.Status, p.Command)
}

// Drain reports every Done, Async-flagged process and removes every Done
// process, async or not, mirroring
// update_jobs (print_completed_processes + remove_completed_processes).
// Returns the formatted lines in the order they were printed.
func (t *Table) Drain() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var lines []string
	n := 0
	for _, pid := range t.order {
		p := t.procs[pid]
		if p.Status == Done && p.Flags&Async != 0 {
			n++
			lines = append(lines, FormatLine(n, *p))
		}
	}
	for _, pid := range append([]int(nil), t.order...) {
		if t.procs[pid].Status == Done {
			t.removeLocked(pid)
		}
	}
	return lines
}
