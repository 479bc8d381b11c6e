// Package interpose mediates OS interrupt signals into named user
// callbacks that run on an ordinary goroutine, outside the restricted
// context the runtime delivers signals in.
//
// Obtain a Handle for a signal with Mediate, register callbacks by
// name, then Enable capture:
//
//	h, err := interpose.Mediate(interpose.SIGWINCH).
//		Register("print", func(interpose.Signal) { fmt.Println("resized") })
//	if err != nil {
//		return err
//	}
//	if _, err := h.Enable(); err != nil {
//		return err
//	}
//
// All operations are safe to call concurrently from any goroutine.
// Callbacks for one signal run sequentially, in registration order, on
// a single dispatcher goroutine shared by all signals; a callback that
// panics does not stop later callbacks or the dispatcher.
package interpose

import (
	"os"
	"syscall"
)

// Signal identifies one OS interrupt kind by its platform signal
// number. The set of signals is fixed per platform; availability is a
// runtime property queried with Supported, not a compile-time one.
type Signal syscall.Signal

// Signals available on every supported platform. The remaining
// POSIX set is declared in the per-platform files.
const (
	SIGHUP  = Signal(syscall.SIGHUP)
	SIGINT  = Signal(syscall.SIGINT)
	SIGQUIT = Signal(syscall.SIGQUIT)
	SIGILL  = Signal(syscall.SIGILL)
	SIGTRAP = Signal(syscall.SIGTRAP)
	SIGABRT = Signal(syscall.SIGABRT)
	SIGBUS  = Signal(syscall.SIGBUS)
	SIGFPE  = Signal(syscall.SIGFPE)
	SIGKILL = Signal(syscall.SIGKILL)
	SIGSEGV = Signal(syscall.SIGSEGV)
	SIGPIPE = Signal(syscall.SIGPIPE)
	SIGALRM = Signal(syscall.SIGALRM)
	SIGTERM = Signal(syscall.SIGTERM)
)

// Num returns the raw platform signal number.
func (s Signal) Num() int { return int(s) }

// Name returns the conventional name of the signal, e.g. "SIGINT".
// Signals outside the platform catalog format as "signal <n>".
func (s Signal) Name() string { return signalName(s) }

// String implements fmt.Stringer.
func (s Signal) String() string { return s.Name() }

// Supported reports whether this signal exists and is deliverable on
// the current platform.
func (s Signal) Supported() bool {
	for _, cs := range platformSignals {
		if cs == s {
			return true
		}
	}
	return false
}

// catchable reports whether a process-level handler may be installed
// for the signal. SIGKILL and SIGSTOP are reserved by the kernel.
func (s Signal) catchable() bool {
	return s != SIGKILL && s != sigStop
}

// OS returns the signal as an os.Signal for interoperating with the
// standard library, e.g. os.Process.Signal.
func (s Signal) OS() os.Signal { return syscall.Signal(s) }

// Signals returns the catalog of signals available on this platform.
// The returned slice is a copy; callers may modify it.
func Signals() []Signal {
	out := make([]Signal, len(platformSignals))
	copy(out, platformSignals)
	return out
}

// fromOS maps a delivered os.Signal back to a Signal.
func fromOS(s os.Signal) (Signal, bool) {
	if ss, ok := s.(syscall.Signal); ok {
		return Signal(ss), true
	}
	return 0, false
}
