package go_chained_hash_map

import "fmt"

// Pair groups an owned key with an owned value. Two pairs compare equal
// when their keys do; values never take part in equality, which lets a
// bucket chain be scanned for key membership without touching values.
// The key must not be mutated after insertion or it desynchronises from
// its bucket.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Equal reports key equality with another pair.
func (p Pair[K, V]) Equal(rhs Pair[K, V]) bool {
	return p.Key == rhs.Key
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}
