package profiles

import (
	"sync"
	"time"
)

// Profile is the DJ profile record served by the external profile service.
type Profile struct {
	Username string   `json:"username"`
	PhotoURL string   `json:"photo_url"`
	City     string   `json:"city"`
	Genres   []string `json:"genres"`
	Claimed  bool     `json:"claimed"`
}

// Lookup fetches a profile from the upstream service.
type Lookup func(username string) (*Profile, error)

// Cache memoizes profile lookups with a TTL. It is an explicit object the
// caller constructs and passes around; concurrent requests for the same
// username share a single upstream call.
type Cache struct {
	lookup Lookup
	ttl    time.Duration
	clock  func() time.Time

	mu      sync.Mutex
	entries map[string]entry
	pending map[string]chan struct{}
}

type entry struct {
	profile   *Profile
	fetchedAt time.Time
}

// NewCache builds a cache around an upstream lookup. Entries older than ttl
// are refetched on the next request.
func NewCache(lookup Lookup, ttl time.Duration) *Cache {
	return &Cache{
		lookup:  lookup,
		ttl:     ttl,
		clock:   time.Now,
		entries: make(map[string]entry),
		pending: make(map[string]chan struct{}),
	}
}

// WithClock replaces the time source. Tests use this to force expiry.
func (c *Cache) WithClock(clock func() time.Time) *Cache {
	c.clock = clock
	return c
}

// Get returns the cached profile for username, fetching it if missing or
// stale.
func (c *Cache) Get(username string) (*Profile, error) {
	for {
		c.mu.Lock()
		if e, ok := c.entries[username]; ok && c.clock().Sub(e.fetchedAt) < c.ttl {
			c.mu.Unlock()
			return e.profile, nil
		}

		// Someone else already fetching? Wait and re-check.
		if waitCh, inflight := c.pending[username]; inflight {
			c.mu.Unlock()
			<-waitCh
			continue
		}

		// Our fetch. Register intent before releasing the lock.
		done := make(chan struct{})
		c.pending[username] = done
		c.mu.Unlock()
		break
	}

	profile, err := c.lookup(username)

	c.mu.Lock()
	close(c.pending[username])
	delete(c.pending, username)
	if err == nil {
		c.entries[username] = entry{profile: profile, fetchedAt: c.clock()}
	}
	c.mu.Unlock()

	return profile, err
}

// Evict drops a single cached entry.
func (c *Cache) Evict(username string) {
	c.mu.Lock()
	delete(c.entries, username)
	c.mu.Unlock()
}

// Len reports how many entries are cached (stale ones included).
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
