// Package lru provides a least-recently-used cache built on linkedlist.DoublyLinkedList.
package lru

import (
	"sync"

	"github.com/bradenaw/juniper/xslices"
	"github.com/sirkon/errors"

	"github.com/bradenaw/linkedlist"
)

// Cache is a least-recently-used eviction policy cache. It has a defined size in number of items.
// If the Cache is full when putting an item, the key that was least recently Get or Put is evicted
// to make space.
//
// Cache's methods may be called concurrently.
type Cache[K comparable, V any] struct {
	m sync.Mutex

	// Ordered from least to most recently used.
	order *linkedlist.DoublyLinkedList[entry[K, V]]
	items map[K]*linkedlist.DoublyLinkedNode[entry[K, V]]
	size  int
}

type entry[K comparable, V any] struct {
	k K
	v V
}

// New returns a Cache that holds at most size items.
func New[K comparable, V any](size int) (*Cache[K, V], error) {
	if size < 1 {
		return nil, errors.Wrap(linkedlist.ErrInvalidArgument, "lru size must be positive").
			Int("size", size)
	}
	return &Cache[K, V]{
		order: linkedlist.NewDoubly[entry[K, V]](),
		items: make(map[K]*linkedlist.DoublyLinkedNode[entry[K, V]], size),
		size:  size,
	}, nil
}

// Get returns the value associated with key, or false in the second return if key is not
// resident.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	node, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.touch(node)
	return node.Value().v, true
}

// Put adds key and value to the cache, overwriting the value if key is already resident.
func (c *Cache[K, V]) Put(key K, value V) {
	c.m.Lock()
	defer c.m.Unlock()
	if node, ok := c.items[key]; ok {
		node.SetValue(entry[K, V]{k: key, v: value})
		c.touch(node)
		return
	}
	c.items[key] = c.order.InsertLast(entry[K, V]{k: key, v: value})
	if c.order.Count() > c.size {
		evicted := c.order.RemoveFirst()
		delete(c.items, evicted.Value().k)
	}
}

// Forget removes key from the cache.
func (c *Cache[K, V]) Forget(key K) {
	c.m.Lock()
	defer c.m.Unlock()
	node, ok := c.items[key]
	if !ok {
		return
	}
	delete(c.items, key)
	// node came from c.order, so Remove cannot fail.
	_, _ = c.order.Remove(node)
}

func (c *Cache[K, V]) Len() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.order.Count()
}

// Keys returns the resident keys from least to most recently used.
func (c *Cache[K, V]) Keys() []K {
	c.m.Lock()
	defer c.m.Unlock()
	return xslices.Map(c.order.ToSlice(), func(e entry[K, V]) K { return e.k })
}

func (c *Cache[K, V]) touch(node *linkedlist.DoublyLinkedNode[entry[K, V]]) {
	// node came from c.order, so MoveToBack cannot fail.
	_ = c.order.MoveToBack(node)
}
