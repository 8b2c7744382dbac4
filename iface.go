package go_chained_hash_map

// IMap is the public operation set of the chained hash map.
type IMap[K comparable, V any] interface {
	// Insert places (key, value) unless key already exists. The returned
	// iterator references the stored pair; the bool reports whether a new
	// pair was created. Insert never overwrites an existing value.
	Insert(key K, value V) (Iterator[K, V], bool)
	// Ref returns a pointer to key's value, materialising a default-valued
	// pair first when key is absent.
	Ref(key K) *V
	// Find returns an iterator at key's pair, or the end sentinel.
	Find(key K) Iterator[K, V]
	// Get is a convenience lookup returning the value and whether it exists.
	Get(key K) (V, bool)
	// Delete unlinks key's pair, reporting whether one was removed.
	Delete(key K) bool
	// Count returns 1 when key is present, 0 otherwise.
	Count(key K) int

	Size() int
	Empty() bool
	Clear()

	LoadFactor() float64
	MaxLoadFactor() float64
	SetMaxLoadFactor(ml float64)
	Rehash(n int)
	Reserve(n int)

	BucketCount() int
	BucketSize(ndx int) int
	Bucket(key K) int

	Begin() Iterator[K, V]
	End() Iterator[K, V]

	// utils

	GetStats() Stats
}

// IHasher maps a key to a 64-bit hash. Implementations must be
// deterministic for the lifetime of the map that uses them.
type IHasher[K comparable] interface {
	Hash(key K) uint64
}
