package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// IdentifierSource allocates unique assessment ids. Implementations must
// never repeat an id for the lifetime of the store.
type IdentifierSource interface {
	NewID() string
}

// ClockSource supplies the logical timestamps stamped onto records. Values
// must be non-decreasing across calls.
type ClockSource interface {
	Now() time.Time
}

// CallerIdentity supplies the identity of whoever is invoking a mutating
// operation
type CallerIdentity interface {
	Current() string
}

// UUIDSource issues random UUID identifiers
type UUIDSource struct{}

// NewID returns a fresh UUID string
func (UUIDSource) NewID() string {
	return uuid.NewString()
}

// SystemClock returns UTC wall-clock time, clamped so it never steps
// backwards even if the host clock does
type SystemClock struct {
	mu   sync.Mutex
	last time.Time
}

// NewSystemClock constructs a SystemClock
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current UTC time, never earlier than a previous call
func (c *SystemClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UTC()
	if now.Before(c.last) {
		now = c.last
	}
	c.last = now
	return now
}

// StaticIdentity attributes every call to the same fixed owner
type StaticIdentity string

// Current returns the fixed owner identity
func (s StaticIdentity) Current() string {
	return string(s)
}
