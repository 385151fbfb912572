//go:build !windows

// Package stderr captures writes to file descriptor 2 that bypass
// os.Stderr, such as native libraries loaded by the terminal stack.
// Captured lines are surfaced through the fault pipeline instead of
// corrupting the TUI layout.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

const messageBuffer = 100

// Messages receives stderr lines captured while the TUI owns the
// terminal. The app drains this channel and reports each line as a
// fault.
var Messages = make(chan string, messageBuffer)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
)

// Start swaps fd 2 for a pipe and relays whatever lands there. It has
// to run before the TUI takes the terminal. A setup error is not fatal:
// without capture, stray writes simply reach the real stderr.
func Start() error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	// Keep a duplicate of the real stderr around for WriteOriginal and
	// for restoring on Stop.
	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	// Point fd 2 at the pipe's write end.
	err = syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd()))
	if err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true

	go relay(pipeRead)

	return nil
}

// relay forwards captured lines to Messages. Writers on fd 2 must never
// block, so a full channel drops the line.
func relay(r *os.File) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case Messages <- line:
		default:
		}
	}
}

// WriteOriginal bypasses the capture and writes to the saved stderr, for
// fatal messages that must stay visible while the TUI holds the screen.
func WriteOriginal(msg string) {
	if origStderr > 0 {
		_, _ = syscall.Write(origStderr, []byte(msg))
	}
}

// Stop puts the original stderr back and closes Messages. Runs on exit.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	pipeWrite.Close()
	pipeRead.Close()

	close(Messages)
	started = false
}
