package jobs

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mitchellh/go-ps"
	"golang.org/x/sys/unix"
)

// Reaper asynchronously collects finished children and updates a Table,
// standing in for original_source's sigaction(SIGCHLD, sigchld_handler)
// (msh_jobs.cpp). Go forbids installing a true signal handler that calls
// back into arbitrary code from signal context, so the idiomatic
// substitute is signal.Notify delivering to a channel consumed by an
// ordinary goroutine that drains exited children with unix.Wait4 — the
// same WNOHANG reap loop, moved out of signal context.
type Reaper struct {
	table *Table

	mu      sync.Mutex
	ch      chan os.Signal
	stop    chan struct{}
	stopped bool
}

// NewReaper wires a Reaper to table but does not start listening; call
// Start from the interactive shell's init path (mirrors init_job_control).
func NewReaper(table *Table) *Reaper {
	return &Reaper{table: table}
}

// Start installs the SIGCHLD listener and begins reaping in the
// background. Calling Start twice is a no-op.
func (r *Reaper) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ch != nil {
		return
	}
	r.ch = make(chan os.Signal, 64)
	r.stop = make(chan struct{})
	signal.Notify(r.ch, syscall.SIGCHLD)
	go r.loop(r.ch, r.stop)
}

// Stop tears down the listener, mirroring a shutdown path the original's
// process-lifetime signal handler never needed.
func (r *Reaper) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ch == nil || r.stopped {
		return
	}
	r.stopped = true
	signal.Stop(r.ch)
	close(r.stop)
}

func (r *Reaper) loop(ch chan os.Signal, stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-ch:
			r.reapAvailable()
		}
	}
}

// reapAvailable implements sigchld_handler's body: drain every exited or
// stopped child with WNOHANG so the loop never blocks waiting for more
// than are already collectable.
func (r *Reaper) reapAvailable() {
	var ws unix.WaitStatus
	for {
		pid, err := unix.Wait4(-1, &ws, unix.WNOHANG, nil)
		if err != nil || pid <= 0 {
			return
		}
		switch {
		case ws.Exited(), ws.Signaled():
			r.table.SetStatus(pid, Done)
		case ws.Stopped():
			r.table.SetStatus(pid, Stopped)
		}
	}
}

// WaitForeground blocks for one specific foreground child to exit,
// mirroring wait_for_process: unlike the background reaper this
// necessarily blocks the caller, since the shell must not print its
// prompt again until the foreground job has finished.
func WaitForeground(pid int) (exitStatus int, err error) {
	var ws unix.WaitStatus
	for {
		_, err = unix.Wait4(pid, &ws, 0, nil)
		if err == nil {
			break
		}
		if err != unix.EINTR {
			return -1, err
		}
	}
	switch {
	case ws.Exited():
		return ws.ExitStatus(), nil
	case ws.Signaled():
		return 128 + int(ws.Signal()), nil
	default:
		return 0, nil
	}
}

// CrossCheckAlive reports which of the given PIDs the OS process table
// still lists as live. The `jobs` builtin does not call it; it prints
// the status recorded in the job table. Grounded on the pack's
// github.com/mitchellh/go-ps, the only process-enumeration library
// present across the examples.
func CrossCheckAlive(pids []int) map[int]bool {
	alive := make(map[int]bool, len(pids))
	procs, err := ps.Processes()
	if err != nil {
		return alive
	}
	live := make(map[int]bool, len(procs))
	for _, p := range procs {
		live[p.Pid()] = true
	}
	for _, pid := range pids {
		alive[pid] = live[pid]
	}
	return alive
}
