// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package trie provides a generic in-memory prefix tree mapping sequences of
// key elements to values. Keys sharing a common leading element sequence share
// the nodes representing that prefix, so lookups and insertions cost one map
// operation per key element, independent of the number of stored keys.
//
// A key is any finite []E, including the empty slice, which addresses the
// root position. Keys are independent of each other even when one is a prefix
// of another: storing a value for []E{'a', 'b'} does not make []E{'a'}
// retrievable.
package trie

import "iter"

//go:generate mockgen -source trie.go -destination trie_mocks.go -package trie

// Trie is the contract implemented by tries mapping element sequences of type
// E to values of type V. Element types must be usable as map keys; value
// types are unconstrained. Absence of a value is reported through the boolean
// result, never through a panic or an error.
type Trie[E comparable, V any] interface {
	// Get returns the value stored for the given key, reporting whether one
	// is present. It does not modify the trie.
	Get(key []E) (V, bool)

	// Insert stores the given value under the given key and returns the value
	// it replaces, if any. Insertion never fails; storing under an already
	// used key overwrites the previous value.
	Insert(key []E, value V) (V, bool)
}

// MapTrie is an in-memory trie holding each node's children in a hash map
// keyed by one key element. The zero value is an empty trie ready for use.
//
// This implementation is not thread-safe. Concurrent access must be
// externally synchronized.
type MapTrie[E comparable, V any] struct {
	root *node[E, V]
}

// NewMapTrie creates an empty trie: a root position with no payload and no
// children.
func NewMapTrie[E comparable, V any]() *MapTrie[E, V] {
	return &MapTrie[E, V]{root: newNode[E, V]()}
}

// Get returns the value stored for the given key, reporting whether one is
// present. The walk consumes one element per step; a missing child or a
// reached position without a payload both report absence. The empty key
// resolves to the root position.
func (t *MapTrie[E, V]) Get(key []E) (V, bool) {
	cur := t.root
	for _, element := range key {
		if cur == nil {
			break
		}
		cur = cur.child(element)
	}
	if cur == nil {
		var zero V
		return zero, false
	}
	return cur.value, cur.present
}

// Insert stores the given value under the given key and returns the value it
// replaces, if any. Nodes missing along the path are created on the way down,
// growing the trie by at most len(key) nodes.
func (t *MapTrie[E, V]) Insert(key []E, value V) (V, bool) {
	cur := t.rootNode()
	for _, element := range key {
		cur = cur.childOrNew(element)
	}
	return cur.swap(value)
}

// Delete removes the value stored for the given key and returns it, if any.
// Nodes left with no payload and no children by the removal are unlinked on
// the way back up, so the node graph matches what the surviving keys would
// have built. The root position always remains. No other key is affected,
// prefixes and extensions of the deleted key included.
func (t *MapTrie[E, V]) Delete(key []E) (V, bool) {
	cur := t.root
	parents := make([]*node[E, V], 0, len(key))
	for _, element := range key {
		if cur == nil {
			break
		}
		parents = append(parents, cur)
		cur = cur.child(element)
	}
	if cur == nil {
		var zero V
		return zero, false
	}
	value, present := cur.clear()
	if !present {
		return value, false
	}
	for i := len(parents) - 1; i >= 0; i-- {
		if cur.present || len(cur.children) > 0 {
			break
		}
		delete(parents[i].children, key[i])
		cur = parents[i]
	}
	return value, true
}

// All returns an iterator over all stored (key, value) pairs in depth-first
// order: a key is yielded before any of its extensions, while the order among
// siblings is unspecified. Each yielded key slice is a copy owned by the
// consumer. The sequence is finite and may be ranged over multiple times.
func (t *MapTrie[E, V]) All() iter.Seq2[[]E, V] {
	return func(yield func([]E, V) bool) {
		if t.root != nil {
			t.root.visit(nil, yield)
		}
	}
}

// rootNode returns the trie's root, materializing it on first use so that the
// zero value of MapTrie behaves like a constructed one. The root and all
// other nodes share the newNode constructor.
func (t *MapTrie[E, V]) rootNode() *node[E, V] {
	if t.root == nil {
		t.root = newNode[E, V]()
	}
	return t.root
}
