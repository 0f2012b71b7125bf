package linkedlist

// Node is an element of a LinkedList. It holds a value and a link to its successor.
type Node[T any] struct {
	next  *Node[T]
	owner *token
	value T
}

// NewNode returns a detached node holding value, for use with InsertFirstNode and InsertLastNode.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

func (n *Node[T]) Value() T { return n.value }

func (n *Node[T]) SetValue(value T) *Node[T] {
	n.value = value
	return n
}

// Next returns the node after n, or nil if n is the last node.
func (n *Node[T]) Next() *Node[T] { return n.next }

func (n *Node[T]) HasNext() bool { return n.next != nil }

// SetNext links next directly after n. It does not update the count of any list n belongs to, so
// relinking nodes that are part of a list leaves that list's invariants to the caller.
func (n *Node[T]) SetNext(next *Node[T]) *Node[T] {
	n.next = next
	return n
}

// Clone returns a detached copy of n holding the same value.
func (n *Node[T]) Clone() *Node[T] {
	return &Node[T]{value: n.value}
}

func (n *Node[T]) detach() *Node[T] {
	n.next = nil
	n.owner = nil
	return n
}
