//go:build windows

// Package stderr provides a no-op implementation for Windows, where
// fd-level redirection is not available through syscall.
package stderr

import "os"

// Messages is never written to on Windows.
var Messages = make(chan string, 100)

// Start is a no-op on Windows.
func Start() error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on Windows.
func Stop() {}
