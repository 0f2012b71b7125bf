package linkedlist

import (
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/stretchr/testify/require"
)

// checkList verifies the structure of l and that it holds exactly want.
func checkList[T any](t *testing.T, l *LinkedList[T], want []T) {
	t.Helper()

	got := make([]T, 0, len(want))
	steps := 0
	for n := l.head; n != nil; n = n.next {
		if steps >= l.count {
			logList(t, l)
			t.Fatalf("more than %d nodes reachable from head", l.count)
		}
		require.True(t, n.owner == l.owner, "node %d not owned by list", steps)
		got = append(got, n.value)
		steps++
	}
	require.Equal(t, l.count, steps)
	require.Equal(t, l.count == 0, l.head == nil)
	require.Equal(t, l.count == 0, l.IsEmpty())
	checkValues(t, want, got)
}

// checkDoubly verifies the structure of l in both directions and that it holds exactly want.
func checkDoubly[T any](t *testing.T, l *DoublyLinkedList[T], want []T) {
	t.Helper()

	require.Equal(t, l.head == nil, l.tail == nil)
	require.Equal(t, l.count == 0, l.head == nil)
	if l.head != nil {
		require.Nil(t, l.head.prev)
		require.Nil(t, l.tail.next)
	}

	got := make([]T, 0, len(want))
	var prev *DoublyLinkedNode[T]
	steps := 0
	for n := l.head; n != nil; n = n.next {
		if steps >= l.count {
			logDoubly(t, l)
			t.Fatalf("more than %d nodes reachable from head", l.count)
		}
		require.True(t, n.prev == prev, "node %d prev does not point at its predecessor", steps)
		require.True(t, n.owner == l.owner, "node %d not owned by list", steps)
		got = append(got, n.value)
		prev = n
		steps++
	}
	require.Equal(t, l.count, steps)
	require.True(t, prev == l.tail, "forward walk does not end at tail")

	backward := 0
	for n := l.tail; n != nil; n = n.prev {
		backward++
		require.LessOrEqual(t, backward, l.count)
	}
	require.Equal(t, l.count, backward)

	checkValues(t, want, got)
}

func checkValues[T any](t *testing.T, want []T, got []T) {
	t.Helper()
	if want == nil {
		want = []T{}
	}
	if !deepequal.Equal(want, got) {
		deepequal.SideBySide(t, "list values", want, got)
		t.FailNow()
	}
}

func checkDetachedNode[T any](t *testing.T, n *DoublyLinkedNode[T]) {
	t.Helper()
	require.NotNil(t, n)
	require.Nil(t, n.prev)
	require.Nil(t, n.next)
	require.Nil(t, n.owner)
}

func requireInvalidArgument(t *testing.T, err error) {
	t.Helper()
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func requirePanicsInvalidArgument(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %#v is not an error", r)
		requireInvalidArgument(t, err)
	}()
	f()
}

func logList[T any](t *testing.T, l *LinkedList[T]) {
	t.Log("list ==================")
	t.Logf("  count %d", l.count)
	steps := 0
	for n := l.head; n != nil && steps <= l.count; n = n.next {
		t.Logf("    %#v", n.value)
		steps++
	}
}

func logDoubly[T any](t *testing.T, l *DoublyLinkedList[T]) {
	t.Log("doubly ================")
	t.Logf("  count %d", l.count)
	steps := 0
	for n := l.head; n != nil && steps <= l.count; n = n.next {
		pfx := "  "
		if n == l.tail {
			pfx = "->"
		}
		t.Logf("    %s%#v", pfx, n.value)
		steps++
	}
}
