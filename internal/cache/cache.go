// Package cache stores fetched pages so repeated scans of the same URL do
// not hit the network. Memory in front, disk behind.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the interface both layers and the composite satisfy
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for a URL
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "vitae:v1:" + hex.EncodeToString(sum[:])
}
