package interpose

import "errors"

var (
	// ErrStopped is returned by every handle operation after the
	// engine's dispatcher has been stopped. Stopping is terminal;
	// there is no way to restart delivery on a stopped engine.
	ErrStopped = errors.New("interpose: dispatcher stopped")

	// ErrUnsupportedSignal is returned when the requested signal does
	// not exist on the current platform.
	ErrUnsupportedSignal = errors.New("interpose: signal not supported on this platform")

	// ErrInstallFailed is returned when a handler cannot be installed
	// for a signal, e.g. for kernel-reserved signals such as SIGKILL.
	ErrInstallFailed = errors.New("interpose: cannot install handler")
)
