//go:build linux

package interpose

import "golang.org/x/sys/unix"

// Linux-only signals.
const (
	SIGSTKFLT = Signal(unix.SIGSTKFLT)
	SIGPWR    = Signal(unix.SIGPWR)
)

var platformSignals = []Signal{
	SIGHUP, SIGINT, SIGQUIT, SIGILL, SIGTRAP, SIGABRT, SIGBUS, SIGFPE,
	SIGKILL, SIGUSR1, SIGSEGV, SIGUSR2, SIGPIPE, SIGALRM, SIGTERM,
	SIGSTKFLT, SIGCHLD, SIGCONT, SIGSTOP, SIGTSTP, SIGTTIN, SIGTTOU,
	SIGURG, SIGXCPU, SIGXFSZ, SIGVTALRM, SIGPROF, SIGWINCH, SIGIO,
	SIGPWR, SIGSYS,
}
