// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-bitcredit/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(v string) Func[struct{}, string] {
	return func(context.Context, struct{}) (string, error) { return v, nil }
}

func TestRegister_SelectsByEnvironment(t *testing.T) {
	var installed atomic.Bool
	r := NewRegistry(EnvironmentFunc(installed.Load), logger.Nop())

	action, err := Register(r, "greet", constant("browser"), constant("installed"))
	require.NoError(t, err)

	got, err := action.Invoke(context.Background(), struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "browser", got)

	installed.Store(true)
	got, err = action.Invoke(context.Background(), struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "installed", got)

	installed.Store(false)
	got, err = action.Invoke(context.Background(), struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "browser", got)
}

// TestRegister_FirstRegistrationWins verifies memoization by identifier:
// later closures under the same id are ignored.
func TestRegister_FirstRegistrationWins(t *testing.T) {
	r := NewRegistry(EnvironmentFunc(func() bool { return true }), logger.Nop())

	first, err := Register(r, "pick", constant("b1"), constant("i1"))
	require.NoError(t, err)
	second, err := Register(r, "pick", constant("b2"), constant("i2"))
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, r.Len())

	got, err := second.Invoke(context.Background(), struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "i1", got)
}

func TestRegister_SecondRegistrationMayOmitClosures(t *testing.T) {
	r := NewRegistry(EnvironmentFunc(func() bool { return false }), logger.Nop())

	_, err := Register(r, "pick", constant("b1"), constant("i1"))
	require.NoError(t, err)

	again, err := Register[struct{}, string](r, "pick", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "pick", again.ID())
}

func TestRegister_TypeMismatch(t *testing.T) {
	r := NewRegistry(EnvironmentFunc(func() bool { return false }), logger.Nop())

	_, err := Register(r, "pick", constant("b"), constant("i"))
	require.NoError(t, err)

	count := func(context.Context, struct{}) (int, error) { return 1, nil }
	_, err = Register(r, "pick", count, count)
	assert.ErrorIs(t, err, ErrActionTypeMismatch)
}

func TestRegister_InvalidArguments(t *testing.T) {
	r := NewRegistry(EnvironmentFunc(func() bool { return false }), logger.Nop())

	_, err := Register(r, "", constant("b"), constant("i"))
	assert.ErrorIs(t, err, ErrEmptyActionID)

	_, err = Register(r, "half", constant("b"), nil)
	assert.ErrorIs(t, err, ErrNilAction)
	assert.Equal(t, 0, r.Len())
}

func TestInvoke_PropagatesError(t *testing.T) {
	r := NewRegistry(EnvironmentFunc(func() bool { return false }), logger.Nop())
	boom := errors.New("boom")

	action, err := Register(r, "fail",
		func(context.Context, int) (int, error) { return 0, boom },
		func(context.Context, int) (int, error) { return 1, nil },
	)
	require.NoError(t, err)

	_, err = action.Invoke(context.Background(), 7)
	assert.Same(t, boom, err)
}

func TestInvoke_RecoversPanic(t *testing.T) {
	r := NewRegistry(EnvironmentFunc(func() bool { return true }), logger.Nop())

	action, err := Register(r, "panic",
		func(context.Context, int) (int, error) { return 0, nil },
		func(context.Context, int) (int, error) { panic("exploded") },
	)
	require.NoError(t, err)

	out, err := action.Invoke(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrActionPanicked)
	assert.Contains(t, err.Error(), "exploded")
	assert.Zero(t, out)
}

// TestInvoke_ConcurrentCallsAreIndependent verifies there is no
// de-duplication: each call runs the selected implementation once.
func TestInvoke_ConcurrentCallsAreIndependent(t *testing.T) {
	r := NewRegistry(EnvironmentFunc(func() bool { return false }), logger.Nop())

	var calls atomic.Int32
	release := make(chan struct{})
	action, err := Register(r, "slow",
		func(_ context.Context, in int) (int, error) {
			calls.Add(1)
			<-release
			return in * 2, nil
		},
		func(context.Context, int) (int, error) { return -1, nil },
	)
	require.NoError(t, err)

	const n = 5
	results := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = action.Invoke(context.Background(), i)
		}(i)
	}
	close(release)
	wg.Wait()

	assert.Equal(t, int32(n), calls.Load())
	for i, got := range results {
		assert.Equal(t, i*2, got)
	}
}
