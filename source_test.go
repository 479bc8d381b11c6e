package interpose

import (
	"os"
	"sync"
)

// fakeSource stands in for the OS signal machinery in tests. Send
// mimics the runtime's delivery exactly: a non-blocking push to the
// registered channel, dropped when the buffer is full or the signal
// is not currently hooked.
type fakeSource struct {
	mu      sync.Mutex
	ch      chan<- os.Signal
	hooked  map[os.Signal]bool
	ignored []os.Signal
	resets  []os.Signal
	stopped bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{hooked: make(map[os.Signal]bool)}
}

func (f *fakeSource) Notify(c chan<- os.Signal, sig ...os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ch = c
	for _, s := range sig {
		f.hooked[s] = true
	}
}

func (f *fakeSource) Ignore(sig ...os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range sig {
		delete(f.hooked, s)
		f.ignored = append(f.ignored, s)
	}
}

func (f *fakeSource) Reset(sig ...os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range sig {
		delete(f.hooked, s)
		f.resets = append(f.resets, s)
	}
}

func (f *fakeSource) Stop(c chan<- os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	f.hooked = make(map[os.Signal]bool)
}

// Send delivers sig as the runtime would. It reports whether the
// notification was accepted rather than dropped.
func (f *fakeSource) Send(sig Signal) bool {
	f.mu.Lock()
	ch := f.ch
	hooked := f.hooked[sig.OS()]
	f.mu.Unlock()
	if ch == nil || !hooked {
		return false
	}
	select {
	case ch <- sig.OS():
		return true
	default:
		return false
	}
}

func (f *fakeSource) isHooked(sig Signal) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hooked[sig.OS()]
}

func (f *fakeSource) resetCount(sig Signal) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.resets {
		if s == sig.OS() {
			n++
		}
	}
	return n
}
