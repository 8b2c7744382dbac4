package go_forward_list

// node owns one element and the rest of the chain after it.
type node[T any] struct {
	data T
	next *node[T]
}

// List is a singly linked chain of exclusively owned nodes. Traversal is
// forward-only; insertion and removal happen at the head or adjacent to a
// known position.
//
// Front, PopFront, InsertAfter and EraseAfter require a structurally valid
// anchor; calling them on an empty list or past the tail is a caller error
// and panics on the nil node.
type List[T any] struct {
	head *node[T]
	size int
}

func (l *List[T]) Size() int   { return l.size }
func (l *List[T]) Empty() bool { return l.head == nil }

// Front returns the head element.
func (l *List[T]) Front() T { return l.head.data }

// PushFront links a new node holding value at the head.
func (l *List[T]) PushFront(value T) {
	l.head = &node[T]{data: value, next: l.head}
	l.size++
}

// PopFront unlinks the head node.
func (l *List[T]) PopFront() {
	l.head = l.head.next
	l.size--
}

// InsertAfter links a new node holding value directly after pos and
// returns the new node's position.
func (l *List[T]) InsertAfter(pos Position[T], value T) Position[T] {
	n := &node[T]{data: value, next: pos.n.next}
	pos.n.next = n
	l.size++
	return Position[T]{n: n}
}

// EraseAfter unlinks the node directly after pos and returns the position
// following the removed node.
func (l *List[T]) EraseAfter(pos Position[T]) Position[T] {
	pos.n.next = pos.n.next.next
	l.size--
	return Position[T]{n: pos.n.next}
}

// Remove unlinks every node whose element compares equal to value under
// equals, scanning the whole chain once. It returns the number of nodes
// removed.
func (l *List[T]) Remove(value T, equals func(a, b T) bool) int {
	removed := 0
	for l.head != nil && equals(l.head.data, value) {
		l.head = l.head.next
		l.size--
		removed++
	}
	if l.head == nil {
		return removed
	}
	prev := l.head
	for prev.next != nil {
		if equals(prev.next.data, value) {
			prev.next = prev.next.next
			l.size--
			removed++
		} else {
			prev = prev.next
		}
	}
	return removed
}

// Clear unlinks every node in chain order.
func (l *List[T]) Clear() {
	for ptr := l.head; ptr != nil; {
		next := ptr.next
		ptr.next = nil
		ptr = next
	}
	l.head = nil
	l.size = 0
}

// Clone returns a deep copy preserving chain order.
func (l *List[T]) Clone() List[T] {
	var other List[T]
	var tail *node[T]
	for ptr := l.head; ptr != nil; ptr = ptr.next {
		n := &node[T]{data: ptr.data}
		if tail == nil {
			other.head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	other.size = l.size
	return other
}

// Begin returns the position of the head node.
func (l *List[T]) Begin() Position[T] { return Position[T]{n: l.head} }

// End returns the canonical past-the-end position.
func (l *List[T]) End() Position[T] { return Position[T]{} }
