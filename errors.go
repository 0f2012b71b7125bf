package linkedlist

import (
	"github.com/sirkon/errors"
)

// ErrInvalidArgument is returned, wrapped with context, when an argument can never be valid for
// the call: an insertion position outside [0, Count()], a node that belongs to another list (or
// to none), or a nil callback. Test for it with errors.Is.
const ErrInvalidArgument errors.Const = "invalid argument"

func errPosition(op string, position int, count int) error {
	return errors.Wrap(ErrInvalidArgument, op+" expects a position <= list size").
		Int("position", position).
		Int("count", count)
}

func errNilNode(op string) error {
	return errors.Wrap(ErrInvalidArgument, op+" expects a node")
}

func errForeignNode(op string) error {
	return errors.Wrap(ErrInvalidArgument, op+" expects a node of this list")
}

func errOwnedNode(op string) error {
	return errors.Wrap(ErrInvalidArgument, op+" expects a detached node")
}

// mustCallback panics if f is nil. A nil callback is a programming error, not a condition callers
// are expected to handle.
func mustCallback(op string, isNil bool) {
	if isNil {
		panic(errors.Wrap(ErrInvalidArgument, op+" expects a callback"))
	}
}

// token identifies one generation of a list. Nodes hold their list's token, and Clear replaces it
// so that nodes abandoned by Clear no longer validate against the list.
type token struct{ _ byte }
