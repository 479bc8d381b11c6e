package interpose

import "sync"

// Mode governs whether a signal's occurrence reaches its registered
// callbacks.
type Mode int

const (
	// ModeDefault leaves the signal on its OS default action.
	ModeDefault Mode = iota
	// ModeIgnored makes the process ignore the signal entirely.
	ModeIgnored
	// ModeCaptured forwards each occurrence to the registered
	// callbacks in registration order.
	ModeCaptured
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeIgnored:
		return "ignored"
	case ModeCaptured:
		return "captured"
	default:
		return "unknown"
	}
}

type namedHandler struct {
	name    string
	handler Handler
}

// entry holds one signal's mode and ordered callback list. Each entry
// carries its own lock so operations on unrelated signals never
// contend.
type entry struct {
	mu        sync.Mutex
	mode      Mode
	installed bool
	handlers  []namedHandler
}

// upsert adds or replaces the handler registered under name.
// Replacement keeps the name's original position in dispatch order.
func (e *entry) upsert(name string, h Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.handlers {
		if e.handlers[i].name == name {
			e.handlers[i].handler = h
			return
		}
	}
	e.handlers = append(e.handlers, namedHandler{name: name, handler: h})
}

// remove deletes the handler registered under name, preserving the
// order of the rest. It reports whether the name was present.
func (e *entry) remove(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.handlers {
		if e.handlers[i].name == name {
			copy(e.handlers[i:], e.handlers[i+1:])
			e.handlers = e.handlers[:len(e.handlers)-1]
			return true
		}
	}
	return false
}

// clear empties the callback list. Mode is left untouched, so a
// captured signal keeps delivering to whatever is registered next.
func (e *entry) clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = nil
}

// snapshot returns a copy of the current ordered callback list for
// dispatch, so callbacks run against a stable view while concurrent
// mutation proceeds.
func (e *entry) snapshot() []namedHandler {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]namedHandler(nil), e.handlers...)
}

func (e *entry) currentMode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// registry is the process-wide table of per-signal entries. The table
// lock covers only entry creation and lookup; all entry state is
// guarded by the entry's own lock.
type registry struct {
	mu      sync.Mutex
	entries map[Signal]*entry
}

func newRegistry() *registry {
	return &registry{entries: make(map[Signal]*entry)}
}

// getOrCreate returns the entry for sig, creating it in its initial
// state (ModeDefault, no callbacks) on first access. Entries persist
// for the life of the registry; release resets, never deletes.
func (r *registry) getOrCreate(sig Signal) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sig]
	if !ok {
		e = &entry{}
		r.entries[sig] = e
	}
	return e
}

// lookup returns the entry for sig, or nil if none was ever created.
func (r *registry) lookup(sig Signal) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[sig]
}

// installedSignals returns the signals whose hook is currently
// installed. Used when the engine stops, to restore OS defaults.
func (r *registry) installedSignals() []Signal {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Signal
	for sig, e := range r.entries {
		e.mu.Lock()
		if e.installed {
			out = append(out, sig)
		}
		e.mu.Unlock()
	}
	return out
}
