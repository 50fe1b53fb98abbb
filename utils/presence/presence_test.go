package presence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWaitUntilRunsImmediatelyWhenPredicateHolds(t *testing.T) {
	t.Parallel()

	w := NewWaiter()
	ran := false
	cancel := w.WaitUntil(func() bool { return true }, func() { ran = true })
	require.True(t, ran)
	require.Zero(t, w.Pending())
	cancel()
}

func TestWaitUntilFiresOnceAfterNotify(t *testing.T) {
	t.Parallel()

	w := NewWaiter()
	present := false
	runs := 0
	w.WaitUntil(func() bool { return present }, func() { runs++ })
	require.Equal(t, 1, w.Pending())

	w.Notify()
	require.Equal(t, 0, runs)

	present = true
	w.Notify()
	w.Notify()
	require.Equal(t, 1, runs)
	require.Zero(t, w.Pending())
}

func TestWaitUntilCancelDropsRequest(t *testing.T) {
	t.Parallel()

	w := NewWaiter()
	present := false
	runs := 0
	cancel := w.WaitUntil(func() bool { return present }, func() { runs++ })
	cancel()
	cancel()

	present = true
	w.Notify()
	require.Equal(t, 0, runs)
}

func TestCancelAllDropsEverything(t *testing.T) {
	t.Parallel()

	w := NewWaiter()
	runs := 0
	w.WaitUntil(func() bool { return false }, func() { runs++ })
	w.WaitUntil(func() bool { return false }, func() { runs++ })
	require.Equal(t, 2, w.Pending())

	w.CancelAll()
	w.Notify()
	require.Zero(t, w.Pending())
	require.Equal(t, 0, runs)
}

func TestCallbackMayRegisterNewWait(t *testing.T) {
	t.Parallel()

	w := NewWaiter()
	first := false
	second := false
	secondRan := false

	w.WaitUntil(func() bool { return first }, func() {
		w.WaitUntil(func() bool { return second }, func() { secondRan = true })
	})

	first = true
	w.Notify()
	require.False(t, secondRan)
	require.Equal(t, 1, w.Pending())

	second = true
	w.Notify()
	require.True(t, secondRan)
}

func TestNilArgumentsAreIgnored(t *testing.T) {
	t.Parallel()

	w := NewWaiter()
	cancel := w.WaitUntil(nil, nil)
	cancel()
	require.Zero(t, w.Pending())
}
