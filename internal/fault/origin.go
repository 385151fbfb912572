package fault

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Origin is the source location that raised or installed a fault check.
type Origin struct {
	File     string
	Line     int
	Function string
}

// Short returns "file.go:123" with the directory stripped, for compact display.
func (o Origin) Short() string {
	if o.File == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(o.File), o.Line)
}

// callerOrigin captures the call site skip+1 frames above this function.
// skip=0 means the caller of the function invoking callerOrigin.
func callerOrigin(skip int) Origin {
	pc, file, line, ok := runtime.Caller(skip + 2)
	if !ok {
		return Origin{}
	}
	o := Origin{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		o.Function = fn.Name()
	}
	return o
}
