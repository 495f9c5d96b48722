package beacon

import "sync"

// Config holds the settings shared by every logging call. The only
// mutable setting is the API key: absent until Configure is called,
// last write wins on rotation. Construct one per application and pass
// it by reference; there is no teardown.
type Config struct {
	mu     sync.RWMutex
	apiKey string
	set    bool
}

// Configure stores the API key used by subsequent sends. Calling it
// again rotates the key; repeated identical calls have no extra effect.
func (c *Config) Configure(apiKey string) {
	c.mu.Lock()
	c.apiKey = apiKey
	c.set = true
	c.mu.Unlock()
}

// APIKey returns the configured key and whether Configure was ever called.
func (c *Config) APIKey() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey, c.set
}
