package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sync"
	"time"

	"namematch/internal/domain"
)

// QueryCache memoizes ranked query results. Entries carry the corpus
// generation they were computed against; Invalidate bumps the generation so
// a mutated corpus can never serve stale rankings.
type QueryCache struct {
	mu        sync.RWMutex
	entries   map[string]*cacheEntry
	order     []string
	maxSize   int
	ttl       time.Duration
	corpusGen uint64
}

type cacheEntry struct {
	result    domain.QueryResult
	timestamp time.Time
	corpusGen uint64
}

func NewQueryCache(maxSize int, ttl time.Duration) *QueryCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &QueryCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

func cacheKey(query string, method domain.Method, topK int) string {
	data := []byte(query)
	data = append(data, 0)
	data = append(data, method...)
	data = binary.AppendVarint(data, int64(topK))
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:16])
}

func (c *QueryCache) Get(query string, method domain.Method, topK int) (domain.QueryResult, bool) {
	c.mu.RLock()
	key := cacheKey(query, method, topK)
	entry, exists := c.entries[key]
	currentGen := c.corpusGen
	c.mu.RUnlock()

	if !exists {
		return domain.QueryResult{}, false
	}

	if time.Since(entry.timestamp) > c.ttl || entry.corpusGen != currentGen {
		c.mu.Lock()
		delete(c.entries, key)
		c.removeFromOrder(key)
		c.mu.Unlock()
		return domain.QueryResult{}, false
	}

	c.mu.Lock()
	c.moveToEnd(key)
	c.mu.Unlock()

	return entry.result, true
}

func (c *QueryCache) Put(query string, method domain.Method, topK int, result domain.QueryResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(query, method, topK)

	if _, exists := c.entries[key]; exists {
		c.entries[key] = &cacheEntry{
			result:    result,
			timestamp: time.Now(),
			corpusGen: c.corpusGen,
		}
		c.moveToEnd(key)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = &cacheEntry{
		result:    result,
		timestamp: time.Now(),
		corpusGen: c.corpusGen,
	}
	c.order = append(c.order, key)
}

// Invalidate drops all entries and advances the corpus generation.
func (c *QueryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
	c.corpusGen++
}

func (c *QueryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *QueryCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *QueryCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *QueryCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
