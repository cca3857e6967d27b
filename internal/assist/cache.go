package assist

// Cache memoizes one response per prompt id. Lookups and stores happen on the
// UI loop; generation itself runs in a command, so Begin marks an id as in
// flight to keep a second request from generating it again.
type Cache struct {
	entries  map[string]string
	inFlight map[string]bool
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries:  make(map[string]string),
		inFlight: make(map[string]bool),
	}
}

// Lookup returns the cached response for id.
func (c *Cache) Lookup(id string) (string, bool) {
	s, ok := c.entries[id]
	return s, ok
}

// Begin marks id as being generated. It returns false when id is already
// cached or in flight, meaning the caller must not generate it.
func (c *Cache) Begin(id string) bool {
	if _, ok := c.entries[id]; ok {
		return false
	}
	if c.inFlight[id] {
		return false
	}
	c.inFlight[id] = true
	return true
}

// Pending reports whether id is being generated.
func (c *Cache) Pending(id string) bool {
	return c.inFlight[id]
}

// Store records the response for id. The first stored value wins.
func (c *Cache) Store(id, text string) {
	delete(c.inFlight, id)
	if _, ok := c.entries[id]; ok {
		return
	}
	c.entries[id] = text
}

// Abort clears the in-flight mark without caching anything.
func (c *Cache) Abort(id string) {
	delete(c.inFlight, id)
}

// Len returns the number of cached responses.
func (c *Cache) Len() int {
	return len(c.entries)
}
