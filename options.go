package go_chained_hash_map

type MapOpt[K comparable, V any] func(m *Map[K, V])

// WithInitialBuckets sets the requested initial bucket count. The actual
// count is the next prime >= n.
func WithInitialBuckets[K comparable, V any](n int) MapOpt[K, V] {
	return func(m *Map[K, V]) {
		m.initialBuckets = n
	}
}

// WithMaxLoadFactor sets the load factor threshold that triggers growth.
func WithMaxLoadFactor[K comparable, V any](ml float64) MapOpt[K, V] {
	return func(m *Map[K, V]) {
		m.maxLoadFactor = ml
	}
}

// WithHasher replaces the default murmur3 hasher.
func WithHasher[K comparable, V any](h IHasher[K]) MapOpt[K, V] {
	return func(m *Map[K, V]) {
		m.hasher = h
	}
}
