// Package linkedlist provides generic singly- and doubly-linked lists.
//
// LinkedList keeps only a head pointer and forward links. DoublyLinkedList also keeps a tail
// pointer and backward links, which makes operations at the back and removal of a known node O(1).
//
// Insertion methods return the node they created, and removal methods return the node they
// removed with its links cleared, or nil if there was nothing to remove. Nodes remember which list
// they belong to, so passing a node of one list to another list's method is reported as
// ErrInvalidArgument rather than corrupting either list.
package linkedlist
