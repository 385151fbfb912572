package fault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"syscall"
)

// Categories describe the originating failure domain of an event.
const (
	CategoryFilesystem = "filesystem_error"
	CategorySystem     = "system_error"
	CategoryRuntime    = "runtime_error"
	CategoryException  = "exception"
	CategoryUnknown    = "unknown"
	CategoryManual     = "manual_report"
)

// classifyError assigns a failure domain to an error. Precedence matters:
// a *fs.PathError wraps a syscall.Errno, so the filesystem check must come
// before the system check, and runtime.Error before the generic fallback.
func classifyError(err error) (Severity, string) {
	var pathErr *fs.PathError
	var linkErr *os.LinkError
	if errors.As(err, &pathErr) || errors.As(err, &linkErr) ||
		errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, fs.ErrExist) || errors.Is(err, fs.ErrClosed) {
		return SeverityError, CategoryFilesystem
	}

	var sysErr *os.SyscallError
	var errno syscall.Errno
	if errors.As(err, &sysErr) || errors.As(err, &errno) {
		return SeverityError, CategorySystem
	}

	var rtErr runtime.Error
	if errors.As(err, &rtErr) {
		return SeverityError, CategoryRuntime
	}

	return SeverityError, CategoryException
}

// classifyPanic assigns a failure domain to a recovered panic value.
// Values without any textual description are the only Critical case.
func classifyPanic(v any) (msg string, sev Severity, category string) {
	switch val := v.(type) {
	case error:
		sev, category = classifyError(val)
		return val.Error(), sev, category
	case string:
		return val, SeverityError, CategoryException
	case fmt.Stringer:
		return val.String(), SeverityError, CategoryException
	default:
		return fmt.Sprint(val), SeverityCritical, CategoryUnknown
	}
}
