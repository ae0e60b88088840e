package lzrom

import (
	"bytes"
	"sync"

	"github.com/pierrec/xxHash/xxHash32"
)

// A Cache remembers the compressed form of blocks it has seen, so that
// recompressing a ROM's graphics after an edit only runs the encoder for the
// blocks that changed. Entries are keyed by an xxHash32 digest of the
// uncompressed data and confirmed by comparing the data itself.
//
// A Cache may be used by several goroutines at once; compression itself is
// serialized.
type Cache struct {
	mu      sync.Mutex
	c       Compressor
	entries map[uint32][]cacheEntry
	n       int
}

type cacheEntry struct {
	src        []byte
	compressed []byte
}

// Compress returns the compressed form of src, from the cache if possible.
// The result is a fresh copy owned by the caller.
func (k *Cache) Compress(src []byte) []byte {
	sum := xxHash32.Checksum(src, 0)

	k.mu.Lock()
	defer k.mu.Unlock()

	for _, e := range k.entries[sum] {
		if bytes.Equal(e.src, src) {
			return append([]byte(nil), e.compressed...)
		}
	}

	compressed := k.c.Compress(src)
	if k.entries == nil {
		k.entries = make(map[uint32][]cacheEntry)
	}
	k.entries[sum] = append(k.entries[sum], cacheEntry{
		src:        append([]byte(nil), src...),
		compressed: compressed,
	})
	k.n++
	return append([]byte(nil), compressed...)
}

// Len returns the number of cached blocks.
func (k *Cache) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.n
}

// Reset empties the cache.
func (k *Cache) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.entries = nil
	k.n = 0
}
