package go_dynamic_array

// Position is a lightweight cursor over the live prefix of an array.
// Two positions compare equal when they reference the same cell of the
// same array. A position is invalidated by any mutation that moves the
// cell it points at.
type Position[T any] struct {
	arr *Array[T]
	ndx int
}

// Valid reports whether the position references a live element.
func (p Position[T]) Valid() bool {
	return p.arr != nil && p.ndx >= 0 && p.ndx < p.arr.size
}

// Next returns the position one element forward.
func (p Position[T]) Next() Position[T] {
	return Position[T]{arr: p.arr, ndx: p.ndx + 1}
}

// Index returns the element index the position references.
func (p Position[T]) Index() int { return p.ndx }

// Value returns the referenced element.
func (p Position[T]) Value() T { return p.arr.buf[p.ndx] }

// Ref returns a pointer to the referenced element.
func (p Position[T]) Ref() *T { return &p.arr.buf[p.ndx] }
