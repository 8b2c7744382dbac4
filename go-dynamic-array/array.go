package go_dynamic_array

import "fmt"

// Array is a contiguous, growable, randomly-indexable sequence. It owns a
// single backing buffer; the first size cells of the buffer are live.
//
// Accessors come in two flavours: At reports OutOfRange for a bad index,
// while Get/Ref/Set index the buffer directly and leave bounds to the
// caller, the same split the hash map relies on for its hot paths.
type Array[T any] struct {
	buf  []T
	size int
}

// New returns an array of the given size with every live cell set to fill.
func New[T any](size int, fill T) *Array[T] {
	a := &Array[T]{}
	a.Resize(size, fill)
	return a
}

func (a *Array[T]) Size() int     { return a.size }
func (a *Array[T]) Capacity() int { return len(a.buf) }
func (a *Array[T]) Empty() bool   { return a.size == 0 }

// At returns the element at index ndx, or OutOfRange when ndx is not
// within [0, size).
func (a *Array[T]) At(ndx int) (T, error) {
	if ndx < 0 || ndx >= a.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, size %d", OutOfRange, ndx, a.size)
	}
	return a.buf[ndx], nil
}

// Get returns the element at index ndx without bounds checking beyond the
// buffer itself. Indexing outside [0, size) is a caller error.
func (a *Array[T]) Get(ndx int) T { return a.buf[ndx] }

// Ref returns a pointer to the element at index ndx for in-place mutation.
// The pointer is invalidated by any operation that reallocates the buffer.
func (a *Array[T]) Ref(ndx int) *T { return &a.buf[ndx] }

// Set overwrites the element at index ndx.
func (a *Array[T]) Set(ndx int, value T) { a.buf[ndx] = value }

func (a *Array[T]) Front() T { return a.buf[0] }
func (a *Array[T]) Back() T  { return a.buf[a.size-1] }

// PushBack appends value, growing the buffer geometrically when full.
func (a *Array[T]) PushBack(value T) {
	if a.size >= len(a.buf) {
		a.increaseCapacity(2 * len(a.buf))
	}
	a.buf[a.size] = value
	a.size++
}

// PopBack removes the last element. Popping an empty array is a no-op.
func (a *Array[T]) PopBack() {
	if a.Empty() {
		return
	}
	a.size--
	var zero T
	a.buf[a.size] = zero
}

// Insert places value at index ndx, shifting the suffix right by one.
// ndx == size appends.
func (a *Array[T]) Insert(ndx int, value T) {
	if a.size >= len(a.buf) {
		a.increaseCapacity(2 * len(a.buf))
	}
	copy(a.buf[ndx+1:a.size+1], a.buf[ndx:a.size])
	a.buf[ndx] = value
	a.size++
}

// Erase removes the element at index ndx, shifting the suffix left by one.
func (a *Array[T]) Erase(ndx int) {
	copy(a.buf[ndx:a.size-1], a.buf[ndx+1:a.size])
	a.size--
	var zero T
	a.buf[a.size] = zero
}

// Reserve grows capacity to at least cap without changing size.
func (a *Array[T]) Reserve(cap int) {
	if cap > len(a.buf) {
		a.increaseCapacity(cap)
	}
}

// ShrinkToFit reallocates the buffer to exactly size.
func (a *Array[T]) ShrinkToFit() {
	if a.size < len(a.buf) {
		temp := make([]T, a.size)
		copy(temp, a.buf[:a.size])
		a.buf = temp
	}
}

// Resize sets the length to count. New cells are filled with fill;
// truncation only reduces the visible length.
func (a *Array[T]) Resize(count int, fill T) {
	switch {
	case count > a.size:
		if count > len(a.buf) {
			a.increaseCapacity(2 * count)
		}
		for i := a.size; i < count; i++ {
			a.buf[i] = fill
		}
		a.size = count
	case count < a.size:
		var zero T
		for i := count; i < a.size; i++ {
			a.buf[i] = zero
		}
		a.size = count
	}
}

// Clear drops every live element. Capacity is retained.
func (a *Array[T]) Clear() {
	var zero T
	for i := 0; i < a.size; i++ {
		a.buf[i] = zero
	}
	a.size = 0
}

// Clone returns a deep copy with capacity trimmed to size.
func (a *Array[T]) Clone() *Array[T] {
	other := &Array[T]{
		buf:  make([]T, a.size),
		size: a.size,
	}
	copy(other.buf, a.buf[:a.size])
	return other
}

// Begin returns a position at index 0. The position is exhausted
// immediately when the array is empty.
func (a *Array[T]) Begin() Position[T] {
	return Position[T]{arr: a, ndx: 0}
}

func (a *Array[T]) increaseCapacity(cap int) {
	if cap == 0 {
		cap++
	}
	if cap > len(a.buf) {
		temp := make([]T, cap)
		copy(temp, a.buf[:a.size])
		a.buf = temp
	}
}
