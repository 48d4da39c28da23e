package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

var _ Cache = (*ImageCache)(nil)

// ImageCache keeps avatar references (asset paths, URLs) in memory.
// Entries larger than 1/1024 of the cache size are not stored, so image
// payloads themselves do not belong here.
type ImageCache struct {
	cache *freecache.Cache
	ttl   time.Duration
}

func NewImageCache(sizeMB int, ttl time.Duration) *ImageCache {
	if sizeMB <= 0 {
		sizeMB = 32
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ImageCache{
		cache: freecache.NewCache(sizeMB * 1024 * 1024),
		ttl:   ttl,
	}
}

func (c *ImageCache) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get([]byte(key))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Warnf("image cache get %s: %s", key, err)
		}
		return nil, false
	}
	return val, true
}

func (c *ImageCache) Set(key string, value []byte) error {
	if err := c.cache.Set([]byte(key), value, int(c.ttl.Seconds())); err != nil {
		return fmt.Errorf("image cache set %s (%d bytes): %w", key, len(value), err)
	}
	return nil
}

func (c *ImageCache) Clear() {
	c.cache.Clear()
}

func (c *ImageCache) Stats() (hits, misses int64) {
	return c.cache.HitCount(), c.cache.MissCount()
}
