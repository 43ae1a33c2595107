package autosave

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls []saved
	err   error
}

type saved struct {
	title   string
	content string
}

func (r *recorder) save(title, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, saved{title, content})
	return r.err
}

func (r *recorder) snapshot() []saved {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]saved, len(r.calls))
	copy(out, r.calls)
	return out
}

func TestRapidEditsCoalesceIntoOneSave(t *testing.T) {
	rec := &recorder{}
	c := New(150*time.Millisecond, rec.save)

	c.Change("Draft", "<p>v1</p>")
	time.Sleep(50 * time.Millisecond)
	c.Change("Draft", "<p>v2</p>")

	// The second edit restarted the quiet period; nothing has fired yet.
	time.Sleep(75 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
	assert.True(t, c.PendingSave())

	time.Sleep(200 * time.Millisecond)
	calls := rec.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, saved{"Draft", "<p>v2</p>"}, calls[0])
	assert.False(t, c.PendingSave())
}

func TestEmptyTitleDefaultsToUntitled(t *testing.T) {
	rec := &recorder{}
	c := New(10*time.Millisecond, rec.save)

	c.Change("", "<p>body</p>")
	time.Sleep(100 * time.Millisecond)

	calls := rec.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, "Untitled", calls[0].title)
}

func TestFlushSavesImmediately(t *testing.T) {
	rec := &recorder{}
	c := New(time.Hour, rec.save)

	c.Change("T", "<p>x</p>")
	c.Flush()

	calls := rec.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, saved{"T", "<p>x</p>"}, calls[0])
	assert.False(t, c.PendingSave())
}

func TestFlushWithoutPendingIsNoop(t *testing.T) {
	rec := &recorder{}
	c := New(10*time.Millisecond, rec.save)
	c.Flush()
	assert.Empty(t, rec.snapshot())
}

func TestStopDiscardsPendingSave(t *testing.T) {
	rec := &recorder{}
	c := New(30*time.Millisecond, rec.save)

	c.Change("T", "<p>x</p>")
	c.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
	assert.False(t, c.PendingSave())
}

func TestFailureFlagTracksLastAttempt(t *testing.T) {
	rec := &recorder{err: errors.New("boom")}
	c := New(10*time.Millisecond, rec.save)

	c.Change("T", "<p>x</p>")
	c.Flush()
	assert.True(t, c.Failed())

	// The next successful attempt overwrites the flag. No retries
	// happen in between.
	rec.mu.Lock()
	rec.err = nil
	rec.mu.Unlock()

	c.Change("T", "<p>y</p>")
	c.Flush()
	assert.False(t, c.Failed())
	require.Len(t, rec.snapshot(), 2)
}

func TestZeroDelayUsesDefault(t *testing.T) {
	c := New(0, func(string, string) error { return nil })
	assert.Equal(t, DefaultDelay, c.delay)
}
