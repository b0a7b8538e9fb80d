package countdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// collect buffers frames so tests can assert on the first emission without
// racing the ticker goroutine.
type collect struct {
	mu     sync.Mutex
	frames []string
}

func (c *collect) sink(text string) {
	c.mu.Lock()
	c.frames = append(c.frames, text)
	c.mu.Unlock()
}

func (c *collect) first() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.frames) == 0 {
		return ""
	}
	return c.frames[0]
}

func TestRegistryEmitsImmediately(t *testing.T) {
	r := NewRegistry()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return fixed }
	defer r.StopAll()

	c := &collect{}
	r.Start("b-1", fixed.Add(3661*time.Second), c.sink)

	assert.Eventually(t, func() bool { return c.first() != "" }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "0d 01:01:01", c.first())
}

func TestRegistryExpiredDeadlineEmitsZero(t *testing.T) {
	r := NewRegistry()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return fixed }
	defer r.StopAll()

	c := &collect{}
	r.Start("b-2", fixed.Add(-time.Hour), c.sink)

	assert.Eventually(t, func() bool { return c.first() != "" }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "0d 00:00:00", c.first())
	assert.Equal(t, 1, r.Active())
}

func TestRegistryStartReplacesExistingKey(t *testing.T) {
	r := NewRegistry()
	defer r.StopAll()

	deadline := time.Now().Add(time.Hour)
	c1 := &collect{}
	c2 := &collect{}

	r.Start("same", deadline, c1.sink)
	r.Start("same", deadline, c2.sink)

	// the old ticker is gone, not leaked alongside the new one
	assert.Equal(t, 1, r.Active())

	assert.Eventually(t, func() bool { return c2.first() != "" }, time.Second, 5*time.Millisecond)
}

func TestRegistryStop(t *testing.T) {
	r := NewRegistry()
	r.Start("gone", time.Now().Add(time.Hour), func(string) {})
	assert.Equal(t, 1, r.Active())

	r.Stop("gone")
	assert.Equal(t, 0, r.Active())

	// stopping an unknown key is a no-op
	r.Stop("never-existed")
}

func TestRegistryStopAll(t *testing.T) {
	r := NewRegistry()
	deadline := time.Now().Add(time.Hour)
	r.Start("a", deadline, func(string) {})
	r.Start("b", deadline, func(string) {})
	assert.Equal(t, 2, r.Active())

	r.StopAll()
	assert.Equal(t, 0, r.Active())
}
