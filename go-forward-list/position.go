package go_forward_list

// Position references a single node of a chain. Equality between two
// positions means same node instance, not same value. The zero Position is
// the past-the-end sentinel. A position is invalidated when the node it
// references is unlinked.
type Position[T any] struct {
	n *node[T]
}

// Valid reports whether the position references a live node.
func (p Position[T]) Valid() bool { return p.n != nil }

// Next returns the position of the following node.
func (p Position[T]) Next() Position[T] { return Position[T]{n: p.n.next} }

// Value returns the referenced element.
func (p Position[T]) Value() T { return p.n.data }

// Ref returns a pointer to the referenced element for in-place mutation.
func (p Position[T]) Ref() *T { return &p.n.data }
