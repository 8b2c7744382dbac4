package go_chained_hash_map

import (
	go_forward_list "github.com/datnguyenzzz/nogodb/lib/go-chained-hash-map/go-forward-list"
)

// Iterator is a two-level position over the map: which bucket, and which
// node within that bucket's chain. Advancing walks the current chain and
// skips empty buckets transparently, so iteration visits exactly the live
// pairs and reaches the end sentinel no matter how many trailing buckets
// are empty.
//
// Structural mutation of the region an iterator points at invalidates it.
type Iterator[K comparable, V any] struct {
	m      *Map[K, V]
	bucket int
	pos    go_forward_list.Position[Pair[K, V]]
}

// Valid reports whether the iterator references a live pair.
func (it Iterator[K, V]) Valid() bool { return it.pos.Valid() }

// Next returns the iterator advanced by one pair.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	it.pos = it.pos.Next()
	for !it.pos.Valid() {
		it.bucket++
		if it.bucket >= it.m.buckets.Size() {
			return it.m.End()
		}
		it.pos = it.m.buckets.Ref(it.bucket).Begin()
	}
	return it
}

// Key returns the referenced pair's key.
func (it Iterator[K, V]) Key() K { return it.pos.Ref().Key }

// Value returns the referenced pair's value.
func (it Iterator[K, V]) Value() V { return it.pos.Ref().Value }

// Ref returns a pointer to the referenced pair's value for in-place
// mutation. The key is not exposed mutably.
func (it Iterator[K, V]) Ref() *V { return &it.pos.Ref().Value }

// Bucket returns the bucket index the iterator currently sits in.
func (it Iterator[K, V]) Bucket() int { return it.bucket }

// Begin returns an iterator at the first live pair, or End when the map
// is empty. Leading empty buckets are skipped up front.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	for i := 0; i < m.buckets.Size(); i++ {
		chain := m.buckets.Ref(i)
		if !chain.Empty() {
			return m.makeIterator(i, chain.Begin())
		}
	}
	return m.End()
}

// End returns the canonical past-the-end sentinel.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m: m, bucket: m.buckets.Size()}
}

// BucketBegin returns a position at the head of bucket ndx's chain, for
// local (single bucket) iteration.
func (m *Map[K, V]) BucketBegin(ndx int) go_forward_list.Position[Pair[K, V]] {
	return m.buckets.Ref(ndx).Begin()
}

func (m *Map[K, V]) makeIterator(
	bucket int,
	pos go_forward_list.Position[Pair[K, V]],
) Iterator[K, V] {
	return Iterator[K, V]{m: m, bucket: bucket, pos: pos}
}
