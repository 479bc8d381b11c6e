//go:build unix

package interpose

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// selfSignal delivers sig to this process through the real kernel
// path, exercising the runtime's signal handler end to end.
func selfSignal(t *testing.T, sig syscall.Signal) {
	t.Helper()
	p, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, p.Signal(sig))
}

// SIGWINCH is used throughout: its OS default action is to be
// ignored, so a delivery that races engine teardown cannot kill the
// test process.
func TestRealDeliveryLifecycle(t *testing.T) {
	e := New()
	defer e.Stop()

	events := make(chan string, 8)
	h := e.Mediate(SIGWINCH)
	_, err := h.Register("a", emit(events, "a"))
	require.NoError(t, err)
	_, err = h.Register("b", emit(events, "b"))
	require.NoError(t, err)
	_, err = h.Enable()
	require.NoError(t, err)

	selfSignal(t, syscall.SIGWINCH)
	assert.Equal(t, []string{"a", "b"}, collect(t, events, 2))

	_, err = h.Ignore()
	require.NoError(t, err)
	selfSignal(t, syscall.SIGWINCH)
	requireQuiet(t, events, 150*time.Millisecond)

	_, err = h.Resume()
	require.NoError(t, err)
	selfSignal(t, syscall.SIGWINCH)
	assert.Equal(t, []string{"a", "b"}, collect(t, events, 2))
}

func TestRealDeliveryCarriesSignalDescriptor(t *testing.T) {
	e := New()
	defer e.Stop()

	got := make(chan Signal, 1)
	_, err := e.Mediate(SIGWINCH).Register("which", func(s Signal) {
		select {
		case got <- s:
		default:
		}
	})
	require.NoError(t, err)
	_, err = e.Mediate(SIGWINCH).Enable()
	require.NoError(t, err)

	selfSignal(t, syscall.SIGWINCH)
	select {
	case s := <-got:
		assert.Equal(t, SIGWINCH, s)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for signal descriptor")
	}
}

func TestUnixCatalogHasPosixSet(t *testing.T) {
	for _, s := range []Signal{SIGUSR1, SIGUSR2, SIGCHLD, SIGWINCH, SIGSTOP} {
		assert.True(t, s.Supported(), "%v should be in the unix catalog", s)
	}
	assert.Equal(t, "SIGWINCH", SIGWINCH.Name())
}

func TestEnableStopSignalFails(t *testing.T) {
	e := New(WithSource(newFakeSource()))
	defer e.Stop()

	_, err := e.Mediate(SIGSTOP).Enable()
	assert.ErrorIs(t, err, ErrInstallFailed)
	_, err = e.Mediate(SIGSTOP).Ignore()
	assert.ErrorIs(t, err, ErrInstallFailed)
}
