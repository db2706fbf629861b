// Package cache stores provider lookup results keyed by (title, author) so a
// reference is never fetched twice, across runs included. Failed lookups are
// cached as negative entries and not retried.
package cache

import (
	"encoding/hex"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/gbazo/bibproc/internal/biblio"
)

// Key identifies one cached lookup. The raw title and author are used as-is,
// so whitespace or case variants produce distinct entries.
type Key struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Hash returns a stable collision-free digest of the key, used as the
// primary key by stores that need a single string column.
func (k Key) Hash() string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(k.Title))
	h.Write([]byte{0})
	h.Write([]byte(k.Author))
	return hex.EncodeToString(h.Sum(nil))
}

// Entry is a cached lookup result. Found false marks a negative entry:
// the lookup failed before and must not be retried.
type Entry struct {
	Found bool             `json:"found"`
	Meta  *biblio.Metadata `json:"metadata,omitempty"`
}

// Store persists cache entries between runs.
type Store interface {
	// Load reads all persisted entries. A missing or malformed backing
	// file yields an empty map, not an error.
	Load() (map[Key]Entry, error)

	// Save replaces the persisted entries wholesale.
	Save(map[Key]Entry) error
}

// Cache is an in-memory lookup cache with injected persistence.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]Entry
	store   Store
	bypass  bool
}

// Option configures a Cache.
type Option func(*Cache)

// WithBypass makes Get always miss so every lookup goes to the network.
// New results still replace the stored entries, refreshing stale negatives.
func WithBypass(bypass bool) Option {
	return func(c *Cache) {
		c.bypass = bypass
	}
}

// New creates a cache backed by store. A nil store keeps the cache purely
// in memory.
func New(store Store, opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[Key]Entry),
		store:   store,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load populates the cache from the store. Store failures leave the cache
// empty rather than failing startup.
func (c *Cache) Load() {
	if c.store == nil {
		return
	}
	entries, err := c.store.Load()
	if err != nil || entries == nil {
		return
	}
	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()
}

// Get returns the cached entry for the pair, if any. Negative entries are
// returned as hits with Found false.
func (c *Cache) Get(title, author string) (Entry, bool) {
	if c.bypass {
		return Entry{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[Key{Title: title, Author: author}]
	return e, ok
}

// Put records a lookup result. A nil meta records a negative entry.
func (c *Cache) Put(title, author string, meta *biblio.Metadata) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[Key{Title: title, Author: author}] = Entry{Found: meta != nil, Meta: meta}
}

// Flush writes all entries to the store. Entries learned since the last
// flush are lost if the process dies before this runs.
func (c *Cache) Flush() error {
	if c.store == nil {
		return nil
	}
	c.mu.Lock()
	snapshot := make(map[Key]Entry, len(c.entries))
	for k, e := range c.entries {
		snapshot[k] = e
	}
	c.mu.Unlock()
	return c.store.Save(snapshot)
}

// Clear drops every entry, in memory and in the store.
func (c *Cache) Clear() error {
	c.mu.Lock()
	c.entries = make(map[Key]Entry)
	c.mu.Unlock()
	if c.store == nil {
		return nil
	}
	return c.store.Save(map[Key]Entry{})
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Negatives returns the number of cached failed lookups.
func (c *Cache) Negatives() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.entries {
		if !e.Found {
			n++
		}
	}
	return n
}
