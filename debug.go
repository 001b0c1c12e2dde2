package grasp

import (
	"fmt"
	"os"
)

// debugEnabled gates stderr tracing. Not synchronized; the package follows a
// single-threaded event model, so flip it before feeding events.
var debugEnabled bool

// SetDebug enables or disables stderr tracing of recognizer transitions and
// fired gestures. Off by default.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// DebugEnabled reports whether tracing is enabled.
func DebugEnabled() bool {
	return debugEnabled
}

// debugf prints one trace line to stderr when tracing is enabled.
func debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[grasp] "+format+"\n", args...)
}
