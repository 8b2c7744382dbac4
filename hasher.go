package go_chained_hash_map

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
)

// Murmur3Hasher hashes keys with murmur3. Integer keys are packed
// little-endian before hashing; string keys hash their bytes directly;
// every other comparable kind goes through its fmt rendering.
type Murmur3Hasher[K comparable] struct{}

func (h *Murmur3Hasher[K]) Hash(key K) uint64 {
	return murmur3.Sum64(keyBytes(key))
}

// XXHasher is a drop-in alternative to Murmur3Hasher built on xxhash.
type XXHasher[K comparable] struct{}

func (h *XXHasher[K]) Hash(key K) uint64 {
	return xxhash.Sum64(keyBytes(key))
}

func keyBytes[K comparable](key K) []byte {
	switch k := any(key).(type) {
	case string:
		return []byte(k)
	case int:
		return packUint64(uint64(k))
	case int8:
		return packUint64(uint64(k))
	case int16:
		return packUint64(uint64(k))
	case int32:
		return packUint64(uint64(k))
	case int64:
		return packUint64(uint64(k))
	case uint:
		return packUint64(uint64(k))
	case uint8:
		return packUint64(uint64(k))
	case uint16:
		return packUint64(uint64(k))
	case uint32:
		return packUint64(uint64(k))
	case uint64:
		return packUint64(k)
	case uintptr:
		return packUint64(uint64(k))
	default:
		return fmt.Appendf(nil, "%v", key)
	}
}

func packUint64(k uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, k)
	return buf
}

var (
	_ IHasher[int]    = (*Murmur3Hasher[int])(nil)
	_ IHasher[string] = (*XXHasher[string])(nil)
)
