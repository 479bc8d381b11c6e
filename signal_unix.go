//go:build unix

package interpose

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// Signals shared by the Unix platforms. Numbers come from the host's
// syscall constants, so values differ between OSes (SIGUSR1 is 10 on
// Linux, 30 on macOS).
const (
	SIGUSR1   = Signal(unix.SIGUSR1)
	SIGUSR2   = Signal(unix.SIGUSR2)
	SIGCHLD   = Signal(unix.SIGCHLD)
	SIGCONT   = Signal(unix.SIGCONT)
	SIGSTOP   = Signal(unix.SIGSTOP)
	SIGTSTP   = Signal(unix.SIGTSTP)
	SIGTTIN   = Signal(unix.SIGTTIN)
	SIGTTOU   = Signal(unix.SIGTTOU)
	SIGURG    = Signal(unix.SIGURG)
	SIGXCPU   = Signal(unix.SIGXCPU)
	SIGXFSZ   = Signal(unix.SIGXFSZ)
	SIGVTALRM = Signal(unix.SIGVTALRM)
	SIGPROF   = Signal(unix.SIGPROF)
	SIGWINCH  = Signal(unix.SIGWINCH)
	SIGIO     = Signal(unix.SIGIO)
	SIGSYS    = Signal(unix.SIGSYS)
)

const sigStop = SIGSTOP

func signalName(s Signal) string {
	if name := unix.SignalName(syscall.Signal(s)); name != "" {
		return name
	}
	return fmt.Sprintf("signal %d", int(s))
}
