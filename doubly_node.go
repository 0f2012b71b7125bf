package linkedlist

// DoublyLinkedNode is an element of a DoublyLinkedList. It holds a value and links to both of its
// neighbors.
type DoublyLinkedNode[T any] struct {
	prev  *DoublyLinkedNode[T]
	next  *DoublyLinkedNode[T]
	owner *token
	value T
}

// NewDoublyLinkedNode returns a detached node holding value, for use with InsertFirstNode and
// InsertLastNode.
func NewDoublyLinkedNode[T any](value T) *DoublyLinkedNode[T] {
	return &DoublyLinkedNode[T]{value: value}
}

func (n *DoublyLinkedNode[T]) Value() T { return n.value }

func (n *DoublyLinkedNode[T]) SetValue(value T) *DoublyLinkedNode[T] {
	n.value = value
	return n
}

func (n *DoublyLinkedNode[T]) Next() *DoublyLinkedNode[T] { return n.next }
func (n *DoublyLinkedNode[T]) Prev() *DoublyLinkedNode[T] { return n.prev }

func (n *DoublyLinkedNode[T]) HasNext() bool { return n.next != nil }
func (n *DoublyLinkedNode[T]) HasPrev() bool { return n.prev != nil }

// SetNext sets n's forward link only. The backward link of next is left alone, as is any list n
// belongs to.
func (n *DoublyLinkedNode[T]) SetNext(next *DoublyLinkedNode[T]) *DoublyLinkedNode[T] {
	n.next = next
	return n
}

// SetPrev sets n's backward link only. See SetNext.
func (n *DoublyLinkedNode[T]) SetPrev(prev *DoublyLinkedNode[T]) *DoublyLinkedNode[T] {
	n.prev = prev
	return n
}

// Clone returns a detached copy of n holding the same value.
func (n *DoublyLinkedNode[T]) Clone() *DoublyLinkedNode[T] {
	return &DoublyLinkedNode[T]{value: n.value}
}

func (n *DoublyLinkedNode[T]) detach() *DoublyLinkedNode[T] {
	n.prev = nil
	n.next = nil
	n.owner = nil
	return n
}
