package go_chained_hash_map

import (
	"math"
	"sync/atomic"

	"go.uber.org/zap"

	go_dynamic_array "github.com/datnguyenzzz/nogodb/lib/go-chained-hash-map/go-dynamic-array"
	go_forward_list "github.com/datnguyenzzz/nogodb/lib/go-chained-hash-map/go-forward-list"
)

var (
	defaultInitialBuckets = 1
	defaultMaxLoadFactor  = 1.0
)

// Stats counts map operations since construction. Counters are bumped
// atomically so that read-only lookups stay safe to run concurrently.
type Stats struct {
	statSet    int64
	statHit    int64
	statMiss   int64
	statDel    int64
	statRehash int32
}

// Map is a key/value hash table with chained collision resolution. Buckets
// live in a dynamic array of singly linked chains; each key hashes to
// exactly one bucket and appears at most once in that bucket's chain. The
// bucket count is always a prime >= 1, and the load factor
// size/bucket_count never exceeds the configured maximum once an insertion
// completes.
//
// Map is not safe for concurrent mutation; it assumes a single logical
// owner, like any other in-process container.
type Map[K comparable, V any] struct {
	buckets *go_dynamic_array.Array[go_forward_list.List[Pair[K, V]]]

	// options
	initialBuckets int
	maxLoadFactor  float64
	hasher         IHasher[K]

	currentSize int
	stats       Stats
}

// NewMap builds a map with at least one bucket, a max load factor of 1.0
// and murmur3 hashing unless overridden by options.
func NewMap[K comparable, V any](opts ...MapOpt[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		initialBuckets: defaultInitialBuckets,
		maxLoadFactor:  defaultMaxLoadFactor,
		hasher:         &Murmur3Hasher[K]{},
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.maxLoadFactor <= 0 {
		msg := "max load factor must be positive"
		zap.L().Error(msg, zap.Float64("max_load_factor", m.maxLoadFactor))
		panic(msg)
	}
	if m.initialBuckets < 1 {
		m.initialBuckets = 1
	}

	var empty go_forward_list.List[Pair[K, V]]
	m.buckets = go_dynamic_array.New(nextPrime(m.initialBuckets), empty)

	return m
}

func (m *Map[K, V]) Size() int   { return m.currentSize }
func (m *Map[K, V]) Empty() bool { return m.currentSize == 0 }

func (m *Map[K, V]) BucketCount() int { return m.buckets.Size() }

// BucketSize returns the chain length of bucket ndx.
func (m *Map[K, V]) BucketSize(ndx int) int { return m.buckets.Ref(ndx).Size() }

// Bucket returns the bucket index key hashes to under the current bucket
// count.
func (m *Map[K, V]) Bucket(key K) int {
	return int(m.hasher.Hash(key) % uint64(m.buckets.Size()))
}

func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.currentSize) / float64(m.buckets.Size())
}

func (m *Map[K, V]) MaxLoadFactor() float64 { return m.maxLoadFactor }

// SetMaxLoadFactor changes the growth threshold. It does not shrink or
// rehash on its own; the next insertion that crosses the threshold does.
func (m *Map[K, V]) SetMaxLoadFactor(ml float64) { m.maxLoadFactor = ml }

// Insert places (key, value) unless key already exists. Key uniqueness
// wins: an existing pair keeps its value and the second return is false.
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	m.growIfNeeded()
	atomic.AddInt64(&m.stats.statSet, 1)

	ndx := m.Bucket(key)
	chain := m.buckets.Ref(ndx)
	if pos, ok := m.scan(chain, key); ok {
		return m.makeIterator(ndx, pos), false
	}

	chain.PushFront(Pair[K, V]{Key: key, Value: value})
	m.currentSize++
	return m.makeIterator(ndx, chain.Begin()), true
}

// Ref returns a pointer to key's value for reading or in-place mutation,
// creating a default-valued pair first when key is absent. This is the
// only operation that silently materialises an entry.
func (m *Map[K, V]) Ref(key K) *V {
	m.growIfNeeded()

	ndx := m.Bucket(key)
	chain := m.buckets.Ref(ndx)
	if pos, ok := m.scan(chain, key); ok {
		return &pos.Ref().Value
	}

	chain.PushFront(Pair[K, V]{Key: key})
	m.currentSize++
	return &chain.Begin().Ref().Value
}

// Find returns an iterator at key's pair, or End when key is absent. An
// empty target bucket exhausts the scan before any dereference.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	ndx := m.Bucket(key)
	if pos, ok := m.scan(m.buckets.Ref(ndx), key); ok {
		atomic.AddInt64(&m.stats.statHit, 1)
		return m.makeIterator(ndx, pos)
	}
	atomic.AddInt64(&m.stats.statMiss, 1)
	return m.End()
}

// Get looks key up and returns its value and whether it exists.
func (m *Map[K, V]) Get(key K) (V, bool) {
	it := m.Find(key)
	if !it.Valid() {
		var zero V
		return zero, false
	}
	return it.Value(), true
}

// Count returns 1 when key is present, 0 otherwise.
func (m *Map[K, V]) Count(key K) int {
	if _, ok := m.scan(m.buckets.Ref(m.Bucket(key)), key); ok {
		return 1
	}
	return 0
}

// Delete unlinks key's pair from its bucket chain. The bucket array is
// never shrunk by deletion.
func (m *Map[K, V]) Delete(key K) bool {
	chain := m.buckets.Ref(m.Bucket(key))
	if chain.Empty() {
		return false
	}

	if chain.Begin().Ref().Key == key {
		chain.PopFront()
	} else {
		prev := chain.Begin()
		for prev.Next().Valid() && prev.Next().Ref().Key != key {
			prev = prev.Next()
		}
		if !prev.Next().Valid() {
			return false
		}
		chain.EraseAfter(prev)
	}

	m.currentSize--
	atomic.AddInt64(&m.stats.statDel, 1)
	return true
}

// Clear drops every pair. The bucket array keeps its current length so a
// cleared map is immediately usable again.
func (m *Map[K, V]) Clear() {
	for i := 0; i < m.buckets.Size(); i++ {
		m.buckets.Ref(i).Clear()
	}
	m.currentSize = 0
}

// Rehash rebuilds the bucket array at the next prime >= n, or larger when
// n would leave the load factor above the threshold. Every stored pair is
// rehomed against the new bucket count exactly once; callers never observe
// an intermediate bucket count.
func (m *Map[K, V]) Rehash(n int) {
	if n <= 0 {
		n = 1
	}
	for float64(n) < float64(m.currentSize)/m.maxLoadFactor {
		n *= 2
	}

	var empty go_forward_list.List[Pair[K, V]]
	temp := go_dynamic_array.New(nextPrime(n), empty)

	for i := 0; i < m.buckets.Size(); i++ {
		chain := m.buckets.Ref(i)
		for pos := chain.Begin(); pos.Valid(); pos = pos.Next() {
			p := *pos.Ref()
			ndx := int(m.hasher.Hash(p.Key) % uint64(temp.Size()))
			temp.Ref(ndx).PushFront(p)
		}
		chain.Clear()
	}

	zap.L().Debug("rehashed bucket array",
		zap.Int("old_bucket_count", m.buckets.Size()),
		zap.Int("new_bucket_count", temp.Size()),
		zap.Int("size", m.currentSize),
	)

	m.buckets = temp
	atomic.AddInt32(&m.stats.statRehash, 1)
}

// Reserve rehashes so that n pairs fit without crossing the load factor
// threshold.
func (m *Map[K, V]) Reserve(n int) {
	m.Rehash(int(math.Ceil(float64(n) / m.maxLoadFactor)))
}

// Clone returns a deep copy: new bucket array, new chains, new pairs.
func (m *Map[K, V]) Clone() *Map[K, V] {
	var empty go_forward_list.List[Pair[K, V]]
	other := &Map[K, V]{
		buckets:        go_dynamic_array.New(m.buckets.Size(), empty),
		initialBuckets: m.initialBuckets,
		maxLoadFactor:  m.maxLoadFactor,
		hasher:         m.hasher,
		currentSize:    m.currentSize,
	}
	for i := 0; i < m.buckets.Size(); i++ {
		other.buckets.Set(i, m.buckets.Ref(i).Clone())
	}
	return other
}

// GetStats returns a snapshot of the operation counters accumulated since
// construction.
func (m *Map[K, V]) GetStats() Stats {
	return Stats{
		statSet:    atomic.LoadInt64(&m.stats.statSet),
		statHit:    atomic.LoadInt64(&m.stats.statHit),
		statMiss:   atomic.LoadInt64(&m.stats.statMiss),
		statDel:    atomic.LoadInt64(&m.stats.statDel),
		statRehash: atomic.LoadInt32(&m.stats.statRehash),
	}
}

func (m *Map[K, V]) growIfNeeded() {
	if m.LoadFactor() >= m.maxLoadFactor {
		m.Rehash(2 * m.currentSize)
	}
}

// scan walks chain for key. The emptiness check is folded into the loop
// condition so an empty bucket never dereferences a position.
func (m *Map[K, V]) scan(
	chain *go_forward_list.List[Pair[K, V]],
	key K,
) (go_forward_list.Position[Pair[K, V]], bool) {
	for pos := chain.Begin(); pos.Valid(); pos = pos.Next() {
		if pos.Ref().Key == key {
			return pos, true
		}
	}
	return chain.End(), false
}

var _ IMap[int, any] = (*Map[int, any])(nil)
