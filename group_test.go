package evac_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/evac-go/evac"
)

func TestGroup_PanicBecomesError(t *testing.T) {
	defer goleak.VerifyNone(t)
	defer evac.TakeHook()

	var got *evac.PanicInfo
	evac.SetHook(func(info *evac.PanicInfo) { got = info })

	var g evac.Group
	g.Go(func() error {
		panic("ooops")
	})

	err := g.Wait()
	require.Error(t, err)

	var pe *evac.PanicError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "ooops", pe.Info.Value)
	require.ErrorContains(t, err, "ooops")
	require.Same(t, got, pe.Info)
}

func TestGroup_ErrorPassthrough(t *testing.T) {
	defer goleak.VerifyNone(t)

	want := errors.New("nope")

	var g evac.Group
	g.Go(func() error {
		return want
	})

	err := g.Wait()
	require.ErrorIs(t, err, want)

	var pe *evac.PanicError
	require.False(t, errors.As(err, &pe))
}

func TestGroup_NoPanicNoError(t *testing.T) {
	defer goleak.VerifyNone(t)

	var g evac.Group
	for i := 0; i < 4; i++ {
		g.Go(func() error { return nil })
	}

	require.NoError(t, g.Wait())
}

func TestGroup_ConcurrentPanicsSerialized(t *testing.T) {
	defer goleak.VerifyNone(t)
	defer evac.TakeHook()

	// The hook mutates without a lock; the group must serialize dispatch.
	dispatched := 0
	evac.SetHook(func(*evac.PanicInfo) { dispatched++ })

	var g evac.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			panic("ooops")
		})
	}

	err := g.Wait()
	require.Error(t, err)
	require.Equal(t, 8, dispatched)
}
