//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package interpose

import "golang.org/x/sys/unix"

// BSD-family signals with no Linux counterpart.
const (
	SIGEMT  = Signal(unix.SIGEMT)
	SIGINFO = Signal(unix.SIGINFO)
)

var platformSignals = []Signal{
	SIGHUP, SIGINT, SIGQUIT, SIGILL, SIGTRAP, SIGABRT, SIGBUS, SIGFPE,
	SIGKILL, SIGUSR1, SIGSEGV, SIGUSR2, SIGPIPE, SIGALRM, SIGTERM,
	SIGCHLD, SIGCONT, SIGSTOP, SIGTSTP, SIGTTIN, SIGTTOU, SIGURG,
	SIGXCPU, SIGXFSZ, SIGVTALRM, SIGPROF, SIGWINCH, SIGIO, SIGSYS,
	SIGEMT, SIGINFO,
}
