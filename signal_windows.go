//go:build windows

package interpose

import "fmt"

// Windows has no POSIX signal delivery. The Go runtime translates
// console control events into SIGINT/SIGTERM only, so the catalog is
// reduced to the kinds that can actually be observed.
var platformSignals = []Signal{SIGINT, SIGTERM}

// No SIGSTOP on Windows; zero never matches a catalog signal.
const sigStop = Signal(0)

func signalName(s Signal) string {
	switch s {
	case SIGHUP:
		return "SIGHUP"
	case SIGINT:
		return "SIGINT"
	case SIGQUIT:
		return "SIGQUIT"
	case SIGILL:
		return "SIGILL"
	case SIGTRAP:
		return "SIGTRAP"
	case SIGABRT:
		return "SIGABRT"
	case SIGBUS:
		return "SIGBUS"
	case SIGFPE:
		return "SIGFPE"
	case SIGKILL:
		return "SIGKILL"
	case SIGSEGV:
		return "SIGSEGV"
	case SIGPIPE:
		return "SIGPIPE"
	case SIGALRM:
		return "SIGALRM"
	case SIGTERM:
		return "SIGTERM"
	}
	return fmt.Sprintf("signal %d", int(s))
}
