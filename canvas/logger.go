package canvas

import (
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while another goroutine draws.
var loggerPtr atomic.Pointer[log.Logger]

func init() {
	loggerPtr.Store(log.New(io.Discard))
}

// SetLogger configures the logger used by the drawing packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Ignored style values and unbalanced Save/Restore calls are
// logged at debug level, font errors at warn level.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	loggerPtr.Store(l)
}

// Logger returns the logger shared by the drawing packages.
func Logger() *log.Logger { return loggerPtr.Load() }
