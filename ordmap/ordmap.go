// Package ordmap defines a generic associative map that remembers the
// order in which its keys were first inserted. It is the flat storage used
// at every node of a deepdict layout, but works as a standalone container.
//
// A Map is not safe for concurrent use.
package ordmap

import "iter"

// Item is a single key/value pair of a Map.
type Item[K comparable, V any] struct {
	Key K
	Val V
}

// Map is an associative container with insertion-ordered iteration.
// Updating an existing key keeps its original position, deleting a key
// keeps the relative order of the remaining keys.
type Map[K comparable, V any] struct {
	index map[K]int // key -> position in items
	items []Item[K, V]
}

// New returns a Map, optionally pre-populated with items in the given
// order. Duplicate keys keep the position of their first occurrence and
// the value of their last.
func New[K comparable, V any](items ...Item[K, V]) *Map[K, V] {
	m := &Map[K, V]{index: make(map[K]int, len(items))}
	for _, it := range items {
		m.Set(it.Key, it.Val)
	}
	return m
}

// Len returns the number of keys in the map.
func (m *Map[K, V]) Len() int {
	return len(m.items)
}

// Has reports whether the key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Get returns the value associated with the key.
func (m *Map[K, V]) Get(key K) (val V, ok bool) {
	i, ok := m.index[key]
	if !ok {
		return
	}
	return m.items[i].Val, true
}

// Set associates a value with a key. A new key is appended at the end, an
// existing key is updated in place. Returns the previous value (if any).
func (m *Map[K, V]) Set(key K, val V) (prev V, existed bool) {
	if i, ok := m.index[key]; ok {
		prev = m.items[i].Val
		m.items[i].Val = val
		return prev, true
	}
	m.index[key] = len(m.items)
	m.items = append(m.items, Item[K, V]{key, val})
	return
}

// Delete removes the key from the map and returns its value (if any).
func (m *Map[K, V]) Delete(key K) (val V, ok bool) {
	i, ok := m.index[key]
	if !ok {
		return
	}
	val = m.items[i].Val
	m.items = append(m.items[:i], m.items[i+1:]...)
	delete(m.index, key)
	// positions after the hole have shifted left
	for j := i; j < len(m.items); j++ {
		m.index[m.items[j].Key] = j
	}
	return val, true
}

// All returns an iterator over the key/value pairs in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, it := range m.items {
			if !yield(it.Key, it.Val) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, it := range m.items {
			if !yield(it.Key) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, it := range m.items {
			if !yield(it.Val) {
				return
			}
		}
	}
}

// Items returns a copy of the key/value pairs in insertion order.
func (m *Map[K, V]) Items() []Item[K, V] {
	items := make([]Item[K, V], len(m.items))
	copy(items, m.items)
	return items
}
