package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolved(t *testing.T) {
	t.Parallel()
	f := Resolved(7)

	require.True(t, f.Settled())
	s, ok := f.Peek()
	require.True(t, ok)
	assert.False(t, s.Rejected)
	assert.Equal(t, 7, s.Value)
	assert.NoError(t, s.Err())
}

func TestRejected_NonErrorReason(t *testing.T) {
	t.Parallel()
	f := Rejected[int]("bad")

	s, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, s.Rejected)
	assert.Equal(t, "bad", s.Reason)

	var pe *PanicError
	require.ErrorAs(t, s.Err(), &pe)
	assert.Equal(t, "bad", pe.Value)
}

func TestNew_SettlesOnce(t *testing.T) {
	t.Parallel()
	f, resolve, reject := New[string]()

	_, ok := f.Peek()
	assert.False(t, ok)

	resolve("first")
	reject(errors.New("late"))
	resolve("second")

	s, ok := f.Peek()
	require.True(t, ok)
	assert.False(t, s.Rejected)
	assert.Equal(t, "first", s.Value)
}

func TestGo_Fulfilled(t *testing.T) {
	t.Parallel()
	f := Go(context.Background(), func(ctx context.Context) (int, error) {
		return 42, nil
	})

	s, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, s.Value)
}

func TestGo_ErrorRejects(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	f := Go(context.Background(), func(ctx context.Context) (int, error) {
		return 0, boom
	})

	s, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, s.Rejected)
	assert.ErrorIs(t, s.Err(), boom)
}

func TestGo_PanicRejectsWithRawValue(t *testing.T) {
	t.Parallel()
	f := Go(context.Background(), func(ctx context.Context) (int, error) {
		panic("kaboom")
	})

	<-f.Done()
	s, ok := f.Peek()
	require.True(t, ok)
	assert.True(t, s.Rejected)
	assert.Equal(t, "kaboom", s.Reason)
}

func TestGo_CancelledContextSkipsFn(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	f := Go(ctx, func(ctx context.Context) (int, error) {
		called = true
		return 1, nil
	})

	s, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, s.Err(), context.Canceled)
	assert.False(t, called)
}

func TestWait_ContextDone(t *testing.T) {
	t.Parallel()
	f, _, _ := New[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, f.Settled())
}

func TestFromChan(t *testing.T) {
	t.Parallel()

	t.Run("value", func(t *testing.T) {
		ch := make(chan int, 1)
		ch <- 5
		s, err := FromChan(context.Background(), ch).Wait(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 5, s.Value)
	})

	t.Run("closed", func(t *testing.T) {
		ch := make(chan int)
		close(ch)
		s, err := FromChan(context.Background(), ch).Wait(context.Background())
		require.NoError(t, err)
		assert.ErrorIs(t, s.Err(), ErrClosed)
	})

	t.Run("context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		f := FromChan(ctx, make(chan int))
		cancel()
		s, err := f.Wait(context.Background())
		require.NoError(t, err)
		assert.ErrorIs(t, s.Err(), context.Canceled)
	})
}
