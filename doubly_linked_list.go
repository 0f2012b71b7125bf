package linkedlist

import (
	"fmt"

	"github.com/bradenaw/juniper/iterator"
)

// DoublyLinkedList is a doubly-linked list. It keeps both a head and a tail pointer and links in
// both directions, so operations at either end and removal of a known node are O(1).
//
// The zero value is an empty list ready to use.
//
// DoublyLinkedList is not safe for concurrent use. The list must not be modified while a
// traversal over it is in progress, except through RemoveEach.
type DoublyLinkedList[T any] struct {
	head  *DoublyLinkedNode[T]
	tail  *DoublyLinkedNode[T]
	count int
	owner *token
}

// FindOptions controls the traversal of DoublyLinkedList.FindWith.
type FindOptions[T any] struct {
	// Reverse walks from tail to head instead of head to tail.
	Reverse bool
	// StartAt is the first node to consider. If nil, the walk starts at the head, or at the tail
	// when Reverse is set.
	StartAt *DoublyLinkedNode[T]
}

// NewDoubly returns an empty DoublyLinkedList.
func NewDoubly[T any]() *DoublyLinkedList[T] {
	return &DoublyLinkedList[T]{owner: &token{}}
}

// DoublyFromSlice returns a DoublyLinkedList holding values in order.
func DoublyFromSlice[T any](values []T) *DoublyLinkedList[T] {
	l := NewDoubly[T]()
	for _, value := range values {
		l.InsertLast(value)
	}
	return l
}

// DoublyFromIterator returns a DoublyLinkedList holding every item produced by iter, in order.
func DoublyFromIterator[T any](iter iterator.Iterator[T]) *DoublyLinkedList[T] {
	l := NewDoubly[T]()
	for {
		value, ok := iter.Next()
		if !ok {
			return l
		}
		l.InsertLast(value)
	}
}

func (l *DoublyLinkedList[T]) Head() *DoublyLinkedNode[T] { return l.head }
func (l *DoublyLinkedList[T]) Tail() *DoublyLinkedNode[T] { return l.tail }
func (l *DoublyLinkedList[T]) Count() int                 { return l.count }
func (l *DoublyLinkedList[T]) IsEmpty() bool              { return l.head == nil }

// Clear empties the list in O(1). Nodes that were in the list are abandoned, and are no longer
// accepted as nodes of l.
func (l *DoublyLinkedList[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.count = 0
	l.owner = &token{}
}

// InsertFirst adds value at the front of the list and returns its node.
func (l *DoublyLinkedList[T]) InsertFirst(value T) *DoublyLinkedNode[T] {
	return l.linkAfter(&DoublyLinkedNode[T]{value: value}, nil)
}

// InsertLast adds value at the back of the list and returns its node.
func (l *DoublyLinkedList[T]) InsertLast(value T) *DoublyLinkedNode[T] {
	return l.linkBefore(&DoublyLinkedNode[T]{value: value}, nil)
}

// InsertFirstNode adds n at the front of the list. n must not be part of any list.
func (l *DoublyLinkedList[T]) InsertFirstNode(n *DoublyLinkedNode[T]) (*DoublyLinkedNode[T], error) {
	if err := l.checkDetached("InsertFirstNode", n); err != nil {
		return nil, err
	}
	return l.linkAfter(n, nil), nil
}

// InsertLastNode adds n at the back of the list. n must not be part of any list.
func (l *DoublyLinkedList[T]) InsertLastNode(n *DoublyLinkedNode[T]) (*DoublyLinkedNode[T], error) {
	if err := l.checkDetached("InsertLastNode", n); err != nil {
		return nil, err
	}
	return l.linkBefore(n, nil), nil
}

// InsertAt adds value so that it ends up at the given 0-based position, and returns its node.
// position must be in [0, Count()]; Count() appends.
func (l *DoublyLinkedList[T]) InsertAt(position int, value T) (*DoublyLinkedNode[T], error) {
	if position < 0 || position > l.count {
		return nil, errPosition("InsertAt", position, l.count)
	}
	if position == 0 {
		return l.InsertFirst(value), nil
	}
	if position == l.count {
		return l.InsertLast(value), nil
	}
	return l.linkAfter(&DoublyLinkedNode[T]{value: value}, l.nodeAt(position-1)), nil
}

// InsertBefore adds value immediately before mark and returns its node. A nil mark appends to the
// list, as InsertLast does.
func (l *DoublyLinkedList[T]) InsertBefore(
	value T,
	mark *DoublyLinkedNode[T],
) (*DoublyLinkedNode[T], error) {
	if mark == nil {
		return l.InsertLast(value), nil
	}
	if !l.owns(mark) {
		return nil, errForeignNode("InsertBefore")
	}
	if mark == l.head {
		return l.InsertFirst(value), nil
	}
	return l.linkBefore(&DoublyLinkedNode[T]{value: value}, mark), nil
}

// InsertAfter adds value immediately after mark and returns its node. A nil mark prepends to the
// list, as InsertFirst does.
func (l *DoublyLinkedList[T]) InsertAfter(
	value T,
	mark *DoublyLinkedNode[T],
) (*DoublyLinkedNode[T], error) {
	if mark == nil {
		return l.InsertFirst(value), nil
	}
	if !l.owns(mark) {
		return nil, errForeignNode("InsertAfter")
	}
	if mark == l.tail {
		return l.InsertLast(value), nil
	}
	return l.linkAfter(&DoublyLinkedNode[T]{value: value}, mark), nil
}

// RemoveFirst removes and returns the head node, or returns nil if the list is empty.
func (l *DoublyLinkedList[T]) RemoveFirst() *DoublyLinkedNode[T] {
	if l.head == nil {
		return nil
	}
	return l.unlink(l.head).detach()
}

// RemoveLast removes and returns the tail node, or returns nil if the list is empty.
func (l *DoublyLinkedList[T]) RemoveLast() *DoublyLinkedNode[T] {
	if l.tail == nil {
		return nil
	}
	return l.unlink(l.tail).detach()
}

// RemoveAt removes and returns the node at the given 0-based position. It returns nil if position
// is not in [0, Count()).
func (l *DoublyLinkedList[T]) RemoveAt(position int) *DoublyLinkedNode[T] {
	if position < 0 || position >= l.count {
		return nil
	}
	return l.unlink(l.nodeAt(position)).detach()
}

// Remove removes n from the list in O(1) and returns it. A nil n is not an error and returns nil.
func (l *DoublyLinkedList[T]) Remove(n *DoublyLinkedNode[T]) (*DoublyLinkedNode[T], error) {
	if n == nil {
		return nil, nil
	}
	if !l.owns(n) {
		return nil, errForeignNode("Remove")
	}
	return l.unlink(n).detach(), nil
}

// RemoveEach removes every node for which f returns true and returns how many were removed. f is
// called once per node, head to tail, with the node's position in the list as it was before
// RemoveEach began.
func (l *DoublyLinkedList[T]) RemoveEach(f func(n *DoublyLinkedNode[T], position int) bool) int {
	mustCallback("RemoveEach", f == nil)

	removed := 0
	n := l.head
	for position := 0; n != nil; position++ {
		next := n.next
		if f(n, position) {
			l.unlink(n).detach()
			removed++
		}
		n = next
	}
	return removed
}

// MoveToFront moves n, which must be in the list, to the front.
func (l *DoublyLinkedList[T]) MoveToFront(n *DoublyLinkedNode[T]) error {
	if n == nil || !l.owns(n) {
		return errForeignNode("MoveToFront")
	}
	if l.head == n {
		return nil
	}
	l.linkAfter(l.unlink(n), nil)
	return nil
}

// MoveToBack moves n, which must be in the list, to the back.
func (l *DoublyLinkedList[T]) MoveToBack(n *DoublyLinkedNode[T]) error {
	if n == nil || !l.owns(n) {
		return errForeignNode("MoveToBack")
	}
	if l.tail == n {
		return nil
	}
	l.linkBefore(l.unlink(n), nil)
	return nil
}

// MoveBefore moves n to immediately before mark. Both must be in the list.
func (l *DoublyLinkedList[T]) MoveBefore(n *DoublyLinkedNode[T], mark *DoublyLinkedNode[T]) error {
	if n == nil || mark == nil || !l.owns(n) || !l.owns(mark) {
		return errForeignNode("MoveBefore")
	}
	if n == mark || n.next == mark {
		return nil
	}
	l.linkBefore(l.unlink(n), mark)
	return nil
}

// MoveAfter moves n to immediately after mark. Both must be in the list.
func (l *DoublyLinkedList[T]) MoveAfter(n *DoublyLinkedNode[T], mark *DoublyLinkedNode[T]) error {
	if n == nil || mark == nil || !l.owns(n) || !l.owns(mark) {
		return errForeignNode("MoveAfter")
	}
	if n == mark || n.prev == mark {
		return nil
	}
	l.linkAfter(l.unlink(n), mark)
	return nil
}

// ForEach calls f for every node from head to tail, with its 0-based position.
func (l *DoublyLinkedList[T]) ForEach(f func(n *DoublyLinkedNode[T], position int)) {
	mustCallback("ForEach", f == nil)

	position := 0
	for n := l.head; n != nil; n = n.next {
		f(n, position)
		position++
	}
}

// ForEachReverse calls f for every node from tail to head, with its 0-based position counted from
// the head.
func (l *DoublyLinkedList[T]) ForEachReverse(f func(n *DoublyLinkedNode[T], position int)) {
	mustCallback("ForEachReverse", f == nil)

	position := l.count - 1
	for n := l.tail; n != nil; n = n.prev {
		f(n, position)
		position--
	}
}

// Find returns the first node from the head for which f returns true, or nil if there is none.
func (l *DoublyLinkedList[T]) Find(f func(n *DoublyLinkedNode[T]) bool) *DoublyLinkedNode[T] {
	mustCallback("Find", f == nil)
	return findDoubly(l.head, f, false)
}

// FindReverse returns the first node from the tail for which f returns true, or nil if there is
// none.
func (l *DoublyLinkedList[T]) FindReverse(f func(n *DoublyLinkedNode[T]) bool) *DoublyLinkedNode[T] {
	mustCallback("FindReverse", f == nil)
	return findDoubly(l.tail, f, true)
}

// FindFrom is like Find, but walks forward from the given node. A nil from starts at the head.
func (l *DoublyLinkedList[T]) FindFrom(
	f func(n *DoublyLinkedNode[T]) bool,
	from *DoublyLinkedNode[T],
) (*DoublyLinkedNode[T], error) {
	return l.FindWith(f, FindOptions[T]{StartAt: from})
}

// FindReverseFrom is like FindReverse, but walks backward from the given node. A nil from starts
// at the tail.
func (l *DoublyLinkedList[T]) FindReverseFrom(
	f func(n *DoublyLinkedNode[T]) bool,
	from *DoublyLinkedNode[T],
) (*DoublyLinkedNode[T], error) {
	return l.FindWith(f, FindOptions[T]{Reverse: true, StartAt: from})
}

// FindWith returns the first node for which f returns true, walking in the direction and from the
// node given by opts. It returns nil if there is no such node.
func (l *DoublyLinkedList[T]) FindWith(
	f func(n *DoublyLinkedNode[T]) bool,
	opts FindOptions[T],
) (*DoublyLinkedNode[T], error) {
	mustCallback("FindWith", f == nil)

	start := opts.StartAt
	if start == nil {
		if opts.Reverse {
			start = l.tail
		} else {
			start = l.head
		}
	} else if !l.owns(start) {
		return nil, errForeignNode("FindWith")
	}
	return findDoubly(start, f, opts.Reverse), nil
}

func findDoubly[T any](
	n *DoublyLinkedNode[T],
	f func(n *DoublyLinkedNode[T]) bool,
	reverse bool,
) *DoublyLinkedNode[T] {
	for n != nil {
		if f(n) {
			return n
		}
		if reverse {
			n = n.prev
		} else {
			n = n.next
		}
	}
	return nil
}

// Filter returns a new list holding copies of the nodes for which f returns true, in the same
// order. l is not modified.
func (l *DoublyLinkedList[T]) Filter(
	f func(n *DoublyLinkedNode[T], position int) bool,
) *DoublyLinkedList[T] {
	mustCallback("Filter", f == nil)

	result := NewDoubly[T]()
	l.ForEach(func(n *DoublyLinkedNode[T], position int) {
		if f(n, position) {
			result.linkBefore(n.Clone(), nil)
		}
	})
	return result
}

// ToSlice returns the values of the list from head to tail.
func (l *DoublyLinkedList[T]) ToSlice() []T {
	values := make([]T, 0, l.count)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// Nodes returns the nodes of the list from head to tail.
func (l *DoublyLinkedList[T]) Nodes() []*DoublyLinkedNode[T] {
	nodes := make([]*DoublyLinkedNode[T], 0, l.count)
	for n := l.head; n != nil; n = n.next {
		nodes = append(nodes, n)
	}
	return nodes
}

// Iter returns an iterator over the nodes of the list from head to tail. The node most recently
// returned may be removed without disturbing the iteration.
func (l *DoublyLinkedList[T]) Iter() iterator.Iterator[*DoublyLinkedNode[T]] {
	return &doublyIterator[T]{curr: l.head}
}

// IterReverse returns an iterator over the nodes of the list from tail to head. The node most
// recently returned may be removed without disturbing the iteration.
func (l *DoublyLinkedList[T]) IterReverse() iterator.Iterator[*DoublyLinkedNode[T]] {
	return &doublyIterator[T]{curr: l.tail, reverse: true}
}

// Values returns an iterator over the values of the list from head to tail.
func (l *DoublyLinkedList[T]) Values() iterator.Iterator[T] {
	return iterator.Map(l.Iter(), (*DoublyLinkedNode[T]).Value)
}

func (l *DoublyLinkedList[T]) String() string {
	return fmt.Sprint(l.ToSlice())
}

// linkAfter inserts n after mark, or at the front if mark is nil.
func (l *DoublyLinkedList[T]) linkAfter(n *DoublyLinkedNode[T], mark *DoublyLinkedNode[T]) *DoublyLinkedNode[T] {
	l.lazyInit()
	n.owner = l.owner
	n.prev = mark
	if mark == nil {
		n.next = l.head
		l.head = n
	} else {
		n.next = mark.next
		mark.next = n
	}
	if n.next == nil {
		l.tail = n
	} else {
		n.next.prev = n
	}
	l.count++
	return n
}

// linkBefore inserts n before mark, or at the back if mark is nil.
func (l *DoublyLinkedList[T]) linkBefore(n *DoublyLinkedNode[T], mark *DoublyLinkedNode[T]) *DoublyLinkedNode[T] {
	l.lazyInit()
	n.owner = l.owner
	n.next = mark
	if mark == nil {
		n.prev = l.tail
		l.tail = n
	} else {
		n.prev = mark.prev
		mark.prev = n
	}
	if n.prev == nil {
		l.head = n
	} else {
		n.prev.next = n
	}
	l.count++
	return n
}

// unlink splices n out of the list. n keeps its links and owner; callers either detach it or link
// it back in elsewhere.
func (l *DoublyLinkedList[T]) unlink(n *DoublyLinkedNode[T]) *DoublyLinkedNode[T] {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	l.count--
	return n
}

// nodeAt returns the node at position, which must be in [0, l.count), walking from whichever end
// is closer.
func (l *DoublyLinkedList[T]) nodeAt(position int) *DoublyLinkedNode[T] {
	if position < l.count/2 {
		n := l.head
		for i := 0; i < position; i++ {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i := l.count - 1; i > position; i-- {
		n = n.prev
	}
	return n
}

func (l *DoublyLinkedList[T]) owns(n *DoublyLinkedNode[T]) bool {
	return l.owner != nil && n.owner == l.owner
}

func (l *DoublyLinkedList[T]) lazyInit() {
	if l.owner == nil {
		l.owner = &token{}
	}
}

func (l *DoublyLinkedList[T]) checkDetached(op string, n *DoublyLinkedNode[T]) error {
	if n == nil {
		return errNilNode(op)
	}
	if n.owner != nil {
		return errOwnedNode(op)
	}
	return nil
}

type doublyIterator[T any] struct {
	curr    *DoublyLinkedNode[T]
	reverse bool
}

func (iter *doublyIterator[T]) Next() (*DoublyLinkedNode[T], bool) {
	if iter.curr == nil {
		return nil, false
	}
	n := iter.curr
	if iter.reverse {
		iter.curr = n.prev
	} else {
		iter.curr = n.next
	}
	return n, true
}
