package linkedlist

import (
	"fmt"

	"github.com/bradenaw/juniper/iterator"
)

// LinkedList is a singly-linked list. It keeps only a head pointer, so operations at the front
// are O(1) and operations at the back are O(n).
//
// The zero value is an empty list ready to use.
//
// LinkedList is not safe for concurrent use. The list must not be modified while ForEach, Find or
// an iterator over it is in progress, except through RemoveEach.
type LinkedList[T any] struct {
	head  *Node[T]
	count int
	owner *token
}

// New returns an empty LinkedList.
func New[T any]() *LinkedList[T] {
	return &LinkedList[T]{owner: &token{}}
}

// FromSlice returns a LinkedList holding values in order. It runs in O(len(values)).
func FromSlice[T any](values []T) *LinkedList[T] {
	l := New[T]()
	var last *Node[T]
	for _, value := range values {
		last = l.link(&Node[T]{value: value}, last)
	}
	return l
}

// FromIterator returns a LinkedList holding every item produced by iter, in order.
func FromIterator[T any](iter iterator.Iterator[T]) *LinkedList[T] {
	l := New[T]()
	var last *Node[T]
	for {
		value, ok := iter.Next()
		if !ok {
			return l
		}
		last = l.link(&Node[T]{value: value}, last)
	}
}

func (l *LinkedList[T]) Head() *Node[T] { return l.head }
func (l *LinkedList[T]) Count() int     { return l.count }
func (l *LinkedList[T]) IsEmpty() bool  { return l.head == nil }

// Clear empties the list in O(1). Nodes that were in the list are abandoned, and are no longer
// accepted as nodes of l.
func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.count = 0
	l.owner = &token{}
}

// InsertFirst adds value at the front of the list and returns its node.
func (l *LinkedList[T]) InsertFirst(value T) *Node[T] {
	return l.link(&Node[T]{value: value}, nil)
}

// InsertFirstNode adds n at the front of the list. n must not be part of any list.
func (l *LinkedList[T]) InsertFirstNode(n *Node[T]) (*Node[T], error) {
	if err := l.checkDetached("InsertFirstNode", n); err != nil {
		return nil, err
	}
	return l.link(n, nil), nil
}

// InsertLast adds value at the back of the list and returns its node. It walks the whole list;
// use InsertLastFrom to start the walk closer to the back.
func (l *LinkedList[T]) InsertLast(value T) *Node[T] {
	return l.insertLastFrom(&Node[T]{value: value}, l.head)
}

// InsertLastFrom adds value at the back of the list, walking forward from from to find the last
// node. A nil from starts at the head. Passing the node returned by the previous InsertLastFrom
// makes repeated appends O(1) each.
func (l *LinkedList[T]) InsertLastFrom(value T, from *Node[T]) (*Node[T], error) {
	if from == nil {
		from = l.head
	} else if !l.owns(from) {
		return nil, errForeignNode("InsertLastFrom")
	}
	return l.insertLastFrom(&Node[T]{value: value}, from), nil
}

// InsertLastNode adds n at the back of the list. n must not be part of any list.
func (l *LinkedList[T]) InsertLastNode(n *Node[T]) (*Node[T], error) {
	if err := l.checkDetached("InsertLastNode", n); err != nil {
		return nil, err
	}
	return l.insertLastFrom(n, l.head), nil
}

// InsertAt adds value so that it ends up at the given 0-based position, and returns its node.
// position must be in [0, Count()]; Count() appends.
func (l *LinkedList[T]) InsertAt(position int, value T) (*Node[T], error) {
	if position < 0 || position > l.count {
		return nil, errPosition("InsertAt", position, l.count)
	}
	if position == 0 {
		return l.InsertFirst(value), nil
	}
	return l.link(&Node[T]{value: value}, l.nodeAt(position-1)), nil
}

// RemoveFirst removes and returns the head node, or returns nil if the list is empty.
func (l *LinkedList[T]) RemoveFirst() *Node[T] {
	if l.head == nil {
		return nil
	}
	n := l.head
	l.head = n.next
	l.count--
	return n.detach()
}

// RemoveLast removes and returns the last node, or returns nil if the list is empty. It is O(n).
func (l *LinkedList[T]) RemoveLast() *Node[T] {
	if l.head == nil || l.head.next == nil {
		return l.RemoveFirst()
	}
	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	n := prev.next
	prev.next = nil
	l.count--
	return n.detach()
}

// RemoveAt removes and returns the node at the given 0-based position. It returns nil if position
// is not in [0, Count()).
func (l *LinkedList[T]) RemoveAt(position int) *Node[T] {
	if position < 0 || position >= l.count {
		return nil
	}
	if position == 0 {
		return l.RemoveFirst()
	}
	prev := l.nodeAt(position - 1)
	n := prev.next
	prev.next = n.next
	l.count--
	return n.detach()
}

// RemoveEach removes every node for which f returns true and returns how many were removed. f is
// called once per node, head to tail, with the node's position in the list as it was before
// RemoveEach began.
func (l *LinkedList[T]) RemoveEach(f func(n *Node[T], position int) bool) int {
	mustCallback("RemoveEach", f == nil)

	removed := 0
	var prev *Node[T]
	n := l.head
	for position := 0; n != nil; position++ {
		next := n.next
		if f(n, position) {
			if prev == nil {
				l.head = next
			} else {
				prev.next = next
			}
			l.count--
			n.detach()
			removed++
		} else {
			prev = n
		}
		n = next
	}
	return removed
}

// ForEach calls f for every node from head to tail, with its 0-based position.
func (l *LinkedList[T]) ForEach(f func(n *Node[T], position int)) {
	mustCallback("ForEach", f == nil)

	position := 0
	for n := l.head; n != nil; n = n.next {
		f(n, position)
		position++
	}
}

// Find returns the first node for which f returns true, or nil if there is none.
func (l *LinkedList[T]) Find(f func(n *Node[T]) bool) *Node[T] {
	mustCallback("Find", f == nil)
	return find(l.head, f)
}

// FindFrom is like Find, but starts from the given node instead of the head. A nil from starts at
// the head.
func (l *LinkedList[T]) FindFrom(f func(n *Node[T]) bool, from *Node[T]) (*Node[T], error) {
	mustCallback("FindFrom", f == nil)
	if from == nil {
		from = l.head
	} else if !l.owns(from) {
		return nil, errForeignNode("FindFrom")
	}
	return find(from, f), nil
}

func find[T any](n *Node[T], f func(n *Node[T]) bool) *Node[T] {
	for ; n != nil; n = n.next {
		if f(n) {
			return n
		}
	}
	return nil
}

// Filter returns a new list holding copies of the nodes for which f returns true, in the same
// order. l is not modified.
func (l *LinkedList[T]) Filter(f func(n *Node[T], position int) bool) *LinkedList[T] {
	mustCallback("Filter", f == nil)

	result := New[T]()
	var last *Node[T]
	l.ForEach(func(n *Node[T], position int) {
		if f(n, position) {
			last = result.link(n.Clone(), last)
		}
	})
	return result
}

// ToSlice returns the values of the list from head to tail.
func (l *LinkedList[T]) ToSlice() []T {
	values := make([]T, 0, l.count)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// Nodes returns the nodes of the list from head to tail.
func (l *LinkedList[T]) Nodes() []*Node[T] {
	nodes := make([]*Node[T], 0, l.count)
	for n := l.head; n != nil; n = n.next {
		nodes = append(nodes, n)
	}
	return nodes
}

// Iter returns an iterator over the nodes of the list from head to tail. The node most recently
// returned may be removed without disturbing the iteration.
func (l *LinkedList[T]) Iter() iterator.Iterator[*Node[T]] {
	return &nodeIterator[T]{curr: l.head}
}

// Values returns an iterator over the values of the list from head to tail.
func (l *LinkedList[T]) Values() iterator.Iterator[T] {
	return iterator.Map(l.Iter(), (*Node[T]).Value)
}

func (l *LinkedList[T]) String() string {
	return fmt.Sprint(l.ToSlice())
}

// link inserts n after prev, or at the front if prev is nil.
func (l *LinkedList[T]) link(n *Node[T], prev *Node[T]) *Node[T] {
	l.lazyInit()
	n.owner = l.owner
	if prev == nil {
		n.next = l.head
		l.head = n
	} else {
		n.next = prev.next
		prev.next = n
	}
	l.count++
	return n
}

func (l *LinkedList[T]) insertLastFrom(n *Node[T], from *Node[T]) *Node[T] {
	if from == nil {
		return l.link(n, nil)
	}
	for from.next != nil {
		from = from.next
	}
	return l.link(n, from)
}

// nodeAt returns the node at position, which must be in [0, l.count).
func (l *LinkedList[T]) nodeAt(position int) *Node[T] {
	n := l.head
	for i := 0; i < position; i++ {
		n = n.next
	}
	return n
}

func (l *LinkedList[T]) owns(n *Node[T]) bool {
	return l.owner != nil && n.owner == l.owner
}

func (l *LinkedList[T]) checkDetached(op string, n *Node[T]) error {
	if n == nil {
		return errNilNode(op)
	}
	if n.owner != nil {
		return errOwnedNode(op)
	}
	return nil
}

func (l *LinkedList[T]) lazyInit() {
	if l.owner == nil {
		l.owner = &token{}
	}
}

type nodeIterator[T any] struct {
	curr *Node[T]
}

func (iter *nodeIterator[T]) Next() (*Node[T], bool) {
	if iter.curr == nil {
		return nil, false
	}
	n := iter.curr
	iter.curr = n.next
	return n, true
}
