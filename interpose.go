package interpose

// Default is the process-wide engine used by the package-level
// functions. Its registry is created eagerly but its dispatcher
// goroutine starts only on the first Enable.
var Default = New()

// Mediate returns a handle for sig on the Default engine, creating
// the signal's registry entry on first access.
func Mediate(sig Signal) *Handle { return Default.Mediate(sig) }

// Stop shuts down the Default engine. Terminal; see Engine.Stop.
func Stop() { Default.Stop() }

// SetLogger sets the logger on the Default engine. Safe for
// concurrent use; the value is read at each dispatch.
func SetLogger(l LoggerFunc) {
	Default.mu.Lock()
	Default.logf = l
	Default.mu.Unlock()
}

// SetDebug toggles debug logging on the Default engine. Safe for
// concurrent use; the value is read at each dispatch.
func SetDebug(enabled bool) {
	Default.mu.Lock()
	Default.debug = enabled
	Default.mu.Unlock()
}
