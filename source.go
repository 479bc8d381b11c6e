package interpose

import (
	"os"
	"os/signal"
)

// SignalSource abstracts the OS-level hook installation used by the
// engine. It is primarily useful for injecting mocks during testing.
//
// The production implementation delegates to the os/signal package,
// whose runtime-side handler does the minimum work permitted in
// signal context: a non-blocking send of the signal number into the
// notification channel. A full channel means the occurrence is
// dropped (coalesced); the producer never blocks.
type SignalSource interface {
	// Notify registers the channel to receive the given signals.
	Notify(c chan<- os.Signal, sig ...os.Signal)
	// Ignore uninstalls any hook and makes the process ignore the
	// given signals.
	Ignore(sig ...os.Signal)
	// Reset uninstalls any hook and restores the OS default action
	// for the given signals.
	Reset(sig ...os.Signal)
	// Stop unregisters the channel from all signals.
	Stop(c chan<- os.Signal)
}

// osSignalSource is the production implementation of SignalSource.
type osSignalSource struct{}

func (osSignalSource) Notify(c chan<- os.Signal, sig ...os.Signal) { signal.Notify(c, sig...) }
func (osSignalSource) Ignore(sig ...os.Signal)                     { signal.Ignore(sig...) }
func (osSignalSource) Reset(sig ...os.Signal)                      { signal.Reset(sig...) }
func (osSignalSource) Stop(c chan<- os.Signal)                     { signal.Stop(c) }
