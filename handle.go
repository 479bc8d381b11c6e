package interpose

// Handler is the interface a registered callback satisfies.
// Implementers receive the signal that fired and run on the engine's
// dispatcher goroutine, in ordinary execution context: they may
// allocate, lock and block, but a blocking callback delays every
// later callback and notification, so they should return promptly.
type Handler interface {
	HandleSignal(sig Signal)
}

// HandlerFunc is an adapter to allow the use of ordinary functions as
// signal callbacks. It satisfies the Handler interface.
type HandlerFunc func(sig Signal)

// HandleSignal calls the underlying function with the given signal.
func (f HandlerFunc) HandleSignal(sig Signal) { f(sig) }

// Handle is a shareable reference to one signal's registration state
// on an engine. It owns nothing itself; all mutation goes through the
// engine's registry under per-signal locks, so a Handle may be used
// from any goroutine, copied, or discarded without cleanup.
// Discarding a Handle does not stop capture; call Release for that.
//
// Every mutating method returns the handle again alongside its error,
// so successful calls can be chained:
//
//	h, err := interpose.Mediate(interpose.SIGHUP).Register("reload", reload)
//	if err == nil {
//		_, err = h.Enable()
//	}
type Handle struct {
	eng *Engine
	sig Signal
}

// Signal returns the signal this handle is bound to.
func (h *Handle) Signal() Signal { return h.sig }

// Register adds fn under name, replacing any callback previously
// registered under the same name. Replacement keeps the original
// position in dispatch order. Registration alone does not start
// delivery; callbacks run only while the signal is enabled.
func (h *Handle) Register(name string, fn func(Signal)) (*Handle, error) {
	return h.RegisterHandler(name, HandlerFunc(fn))
}

// RegisterHandler is Register for a Handler value.
func (h *Handle) RegisterHandler(name string, handler Handler) (*Handle, error) {
	return h, h.eng.register(h.sig, name, handler)
}

// Remove deletes the callback registered under name. Removing an
// absent name is a no-op, not an error.
func (h *Handle) Remove(name string) (*Handle, error) {
	return h, h.eng.remove(h.sig, name)
}

// Clear removes every callback but leaves the mode untouched, so a
// captured signal keeps delivering to callbacks registered later
// without another Enable.
func (h *Handle) Clear() (*Handle, error) {
	return h, h.eng.clear(h.sig)
}

// Enable installs the OS hook for the signal if necessary and starts
// forwarding occurrences to the registered callbacks. It is
// idempotent. Resume is an alias.
func (h *Handle) Enable() (*Handle, error) {
	return h, h.eng.enable(h.sig)
}

// Resume re-enables callback delivery after Ignore or Default.
// Alias of Enable.
func (h *Handle) Resume() (*Handle, error) {
	return h.Enable()
}

// Ignore makes the process ignore the signal. Callbacks are retained;
// Resume re-enables them.
func (h *Handle) Ignore() (*Handle, error) {
	return h, h.eng.ignore(h.sig)
}

// Default restores the OS default action for the signal. Some
// signals' default is itself to be ignored; that is a platform
// property. Callbacks are retained; Resume re-enables them.
func (h *Handle) Default() (*Handle, error) {
	return h, h.eng.toDefault(h.sig)
}

// Release returns the signal to its initial state: all callbacks
// removed and the OS default action restored. Equivalent to Clear
// followed by Default.
func (h *Handle) Release() (*Handle, error) {
	return h, h.eng.release(h.sig)
}
