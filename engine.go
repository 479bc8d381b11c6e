package interpose

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// LoggerFunc receives diagnostic output from an engine, including
// reports of panicking callbacks. The default logger discards
// everything.
type LoggerFunc func(format string, args ...any)

// Option configures an Engine.
type Option func(*Engine)

// WithSource replaces the OS signal source. Intended for tests.
func WithSource(src SignalSource) Option {
	return func(e *Engine) { e.source = src }
}

// WithLogger sets the logger used for panic reports and debug output.
func WithLogger(l LoggerFunc) Option {
	return func(e *Engine) { e.logf = l }
}

// WithDebug enables debug logging of registration and dispatch.
func WithDebug(enabled bool) Option {
	return func(e *Engine) { e.debug = enabled }
}

// WithQueueDepth sets the notification channel's buffer size. Signals
// arriving while the buffer is full are dropped (coalesced); a larger
// buffer tolerates longer callback stalls before drops begin.
func WithQueueDepth(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.depth = n
		}
	}
}

const defaultQueueDepth = 16

// Engine owns a signal registry, the OS hook installations and the
// single dispatcher goroutine that runs callbacks. Most programs use
// the package-level Default engine through Mediate; separate engines
// exist so tests and embedders can isolate state.
type Engine struct {
	mu     sync.Mutex
	source SignalSource
	logf   LoggerFunc
	debug  bool
	depth  int

	started bool
	stopped bool
	sigch   chan os.Signal
	quit    chan struct{}

	reg *registry
}

// New returns an engine with no hooks installed. The dispatcher
// goroutine starts lazily on the first Enable.
func New(opts ...Option) *Engine {
	e := &Engine{
		source: osSignalSource{},
		logf:   func(string, ...any) {},
		depth:  defaultQueueDepth,
		reg:    newRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mediate returns a handle bound to sig on this engine, creating the
// signal's registry entry on first access. The handle is a cheap
// reference; it may be copied, shared and dropped freely.
func (e *Engine) Mediate(sig Signal) *Handle {
	e.reg.getOrCreate(sig)
	return &Handle{eng: e, sig: sig}
}

// Stop shuts the dispatcher down, unhooks every installed signal and
// restores its OS default action. Stopping is terminal: every
// subsequent handle operation on this engine fails with ErrStopped.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	sigch := e.sigch
	quit := e.quit
	src := e.source
	e.mu.Unlock()

	if sigch != nil {
		src.Stop(sigch)
	}
	if quit != nil {
		close(quit)
	}
	for _, sig := range e.reg.installedSignals() {
		src.Reset(sig.OS())
	}
}

// guardInstall validates sig for hook installation. Availability is a
// runtime property of the platform, checked here rather than encoded
// in the type.
func (e *Engine) guardInstall(sig Signal) error {
	if err := e.guard(); err != nil {
		return err
	}
	if !sig.Supported() {
		return fmt.Errorf("%w: %v", ErrUnsupportedSignal, sig)
	}
	if !sig.catchable() {
		return fmt.Errorf("%w: %v is reserved by the kernel", ErrInstallFailed, sig)
	}
	return nil
}

func (e *Engine) guard() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrStopped
	}
	return nil
}

// ensureStarted launches the dispatcher goroutine if it is not
// running and returns the notification channel it drains.
func (e *Engine) ensureStarted() (chan os.Signal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return nil, ErrStopped
	}
	if !e.started {
		e.sigch = make(chan os.Signal, e.depth)
		e.quit = make(chan struct{})
		e.started = true
		go e.loop(e.sigch, e.quit)
	}
	return e.sigch, nil
}

func (e *Engine) register(sig Signal, name string, h Handler) error {
	if err := e.guard(); err != nil {
		return err
	}
	e.reg.getOrCreate(sig).upsert(name, h)
	e.debugf("interpose: register %q for %v", name, sig)
	return nil
}

func (e *Engine) remove(sig Signal, name string) error {
	if err := e.guard(); err != nil {
		return err
	}
	if e.reg.getOrCreate(sig).remove(name) {
		e.debugf("interpose: remove %q for %v", name, sig)
	}
	return nil
}

func (e *Engine) clear(sig Signal) error {
	if err := e.guard(); err != nil {
		return err
	}
	e.reg.getOrCreate(sig).clear()
	e.debugf("interpose: clear %v", sig)
	return nil
}

// enable installs the hook for sig if needed and sets ModeCaptured.
// Idempotent: enabling an already-captured signal is a no-op.
func (e *Engine) enable(sig Signal) error {
	if err := e.guardInstall(sig); err != nil {
		return err
	}
	sigch, err := e.ensureStarted()
	if err != nil {
		return err
	}
	ent := e.reg.getOrCreate(sig)
	ent.mu.Lock()
	install := !ent.installed
	ent.installed = true
	ent.mode = ModeCaptured
	ent.mu.Unlock()
	if install {
		e.src().Notify(sigch, sig.OS())
		e.debugf("interpose: enabled capture of %v", sig)
	}
	return nil
}

// ignore uninstalls the hook in favor of the OS ignore disposition.
// Registered callbacks are retained for a later enable.
func (e *Engine) ignore(sig Signal) error {
	if err := e.guardInstall(sig); err != nil {
		return err
	}
	e.setDisposition(sig, ModeIgnored)
	return nil
}

// toDefault uninstalls the hook in favor of the OS default action.
// Registered callbacks are retained for a later enable.
func (e *Engine) toDefault(sig Signal) error {
	if err := e.guardInstall(sig); err != nil {
		return err
	}
	e.setDisposition(sig, ModeDefault)
	return nil
}

// release resets sig to its initial state: no callbacks, OS default
// action. The registry entry itself persists.
func (e *Engine) release(sig Signal) error {
	if err := e.clear(sig); err != nil {
		return err
	}
	return e.toDefault(sig)
}

func (e *Engine) setDisposition(sig Signal, m Mode) {
	ent := e.reg.getOrCreate(sig)
	ent.mu.Lock()
	ent.installed = false
	ent.mode = m
	ent.mu.Unlock()
	switch m {
	case ModeIgnored:
		e.src().Ignore(sig.OS())
	default:
		e.src().Reset(sig.OS())
	}
	e.debugf("interpose: set %v to %v", sig, m)
}

// loop is the dispatcher: it drains the notification channel and runs
// the callback snapshot for each delivered signal. A signal whose
// mode changed away from ModeCaptured between delivery and dispatch
// is discarded; the latest mode wins.
func (e *Engine) loop(sigch chan os.Signal, quit chan struct{}) {
	for {
		select {
		case <-quit:
			return
		case osSig := <-sigch:
			sig, ok := fromOS(osSig)
			if !ok {
				continue
			}
			ent := e.reg.lookup(sig)
			if ent == nil || ent.currentMode() != ModeCaptured {
				continue
			}
			snapshot := ent.snapshot()
			for _, nh := range snapshot {
				e.invoke(sig, nh)
			}
			e.debugf("interpose: dispatched %v to %d callbacks", sig, len(snapshot))
		}
	}
}

// invoke runs one callback, isolating panics so a failing callback
// stops neither the rest of the dispatch nor the dispatcher.
func (e *Engine) invoke(sig Signal, nh namedHandler) {
	defer func() {
		if rec := recover(); rec != nil {
			logf, _ := e.logger()
			logf("interpose: panic in callback %q for %v: %v\n%s",
				nh.name, sig, rec, debug.Stack())
		}
	}()
	nh.handler.HandleSignal(sig)
}

func (e *Engine) src() SignalSource {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.source
}

func (e *Engine) logger() (LoggerFunc, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.logf, e.debug
}

func (e *Engine) debugf(format string, args ...any) {
	logf, dbg := e.logger()
	if dbg {
		logf(format, args...)
	}
}
