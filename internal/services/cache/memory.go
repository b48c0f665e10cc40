package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTTL applies when Set is called without a TTL
const DefaultTTL = time.Minute

// MemoryCache implements an in-process cache bounded by total bytes
type MemoryCache struct {
	mu          sync.RWMutex
	items       map[string]*cacheItem
	maxSize     int64
	currentSize int64
	stats       CacheStats
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
}

type cacheItem struct {
	value  []byte
	expiry time.Time
	size   int64
}

// NewMemoryCache creates a cache holding at most maxSizeMB megabytes.
// Zero means unbounded.
func NewMemoryCache(maxSizeMB int64) *MemoryCache {
	mc := &MemoryCache{
		items:   make(map[string]*cacheItem),
		maxSize: maxSizeMB * 1024 * 1024,
		stopCh:  make(chan struct{}),
	}

	mc.wg.Add(1)
	go mc.cleanupExpired(time.Minute)

	return mc
}

// Get retrieves a value from the cache
func (mc *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	mc.mu.RLock()
	item, exists := mc.items[key]
	mc.mu.RUnlock()

	if !exists || time.Now().After(item.expiry) {
		if exists {
			_ = mc.Delete(ctx, key)
		}
		atomic.AddInt64(&mc.stats.Misses, 1)
		return nil, false
	}

	atomic.AddInt64(&mc.stats.Hits, 1)
	return item.value, true
}

// Set stores a value in the cache with a TTL
func (mc *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	size := int64(len(key) + len(value))
	if mc.maxSize > 0 && size > mc.maxSize {
		return nil
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if old, exists := mc.items[key]; exists {
		mc.currentSize -= old.size
		delete(mc.items, key)
	}
	mc.makeRoomLocked(size)

	mc.items[key] = &cacheItem{
		value:  value,
		expiry: time.Now().Add(ttl),
		size:   size,
	}
	mc.currentSize += size

	atomic.AddInt64(&mc.stats.Sets, 1)
	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(ctx context.Context, key string) error {
	mc.mu.Lock()
	if item, exists := mc.items[key]; exists {
		delete(mc.items, key)
		mc.currentSize -= item.size
		atomic.AddInt64(&mc.stats.Deletes, 1)
	}
	mc.mu.Unlock()
	return nil
}

// Clear removes all values from the cache
func (mc *MemoryCache) Clear(ctx context.Context) error {
	mc.mu.Lock()
	mc.items = make(map[string]*cacheItem)
	mc.currentSize = 0
	mc.mu.Unlock()
	return nil
}

// Stats returns cache statistics
func (mc *MemoryCache) Stats() CacheStats {
	mc.mu.RLock()
	size := mc.currentSize
	mc.mu.RUnlock()

	return CacheStats{
		Hits:      atomic.LoadInt64(&mc.stats.Hits),
		Misses:    atomic.LoadInt64(&mc.stats.Misses),
		Sets:      atomic.LoadInt64(&mc.stats.Sets),
		Deletes:   atomic.LoadInt64(&mc.stats.Deletes),
		Evictions: atomic.LoadInt64(&mc.stats.Evictions),
		Size:      size,
		MaxSize:   mc.maxSize,
	}
}

// Close stops the cleanup goroutine
func (mc *MemoryCache) Close() error {
	mc.stopOnce.Do(func() { close(mc.stopCh) })
	mc.wg.Wait()
	return nil
}

func (mc *MemoryCache) cleanupExpired(interval time.Duration) {
	defer mc.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.mu.Lock()
			mc.removeExpiredLocked(time.Now())
			mc.mu.Unlock()
		case <-mc.stopCh:
			return
		}
	}
}

func (mc *MemoryCache) removeExpiredLocked(now time.Time) {
	for key, item := range mc.items {
		if now.After(item.expiry) {
			delete(mc.items, key)
			mc.currentSize -= item.size
			atomic.AddInt64(&mc.stats.Evictions, 1)
		}
	}
}

// makeRoomLocked drops expired entries, then the entries closest to expiry,
// until sizeNeeded fits
func (mc *MemoryCache) makeRoomLocked(sizeNeeded int64) {
	if mc.maxSize <= 0 || mc.currentSize+sizeNeeded <= mc.maxSize {
		return
	}

	mc.removeExpiredLocked(time.Now())

	for mc.currentSize+sizeNeeded > mc.maxSize && len(mc.items) > 0 {
		var victim string
		var soonest time.Time
		for key, item := range mc.items {
			if victim == "" || item.expiry.Before(soonest) {
				victim, soonest = key, item.expiry
			}
		}
		mc.currentSize -= mc.items[victim].size
		delete(mc.items, victim)
		atomic.AddInt64(&mc.stats.Evictions, 1)
	}
}
