// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package trie

// ---- Nodes ----

// node is a single position in the trie. Its identity is the sequence of key
// elements consumed on the path from the root; the payload slot is occupied
// iff a key ends at exactly this position. Every node is exclusively owned by
// its parent, the root by the trie, so the structure is always a tree.
type node[E comparable, V any] struct {
	value    V
	present  bool
	children map[E]*node[E, V]
}

// newNode creates a node with no payload and no children. All nodes, the root
// included, are created through this constructor.
func newNode[E comparable, V any]() *node[E, V] {
	return &node[E, V]{
		children: make(map[E]*node[E, V]),
	}
}

// child returns the child node reached by the given element, or nil if there
// is none.
func (n *node[E, V]) child(element E) *node[E, V] {
	return n.children[element]
}

// childOrNew returns the child node for the given element, creating and
// linking a fresh one if it does not exist yet.
func (n *node[E, V]) childOrNew(element E) *node[E, V] {
	next, ok := n.children[element]
	if !ok {
		next = newNode[E, V]()
		n.children[element] = next
	}
	return next
}

// swap replaces the node's payload with the given value and returns the
// previous payload, reporting whether one was present.
func (n *node[E, V]) swap(value V) (V, bool) {
	previous, present := n.value, n.present
	n.value, n.present = value, true
	return previous, present
}

// clear removes the node's payload and returns it, reporting whether one was
// present. The payload slot is reset to the zero value so cleared nodes are
// indistinguishable from fresh ones.
func (n *node[E, V]) clear() (V, bool) {
	previous, present := n.value, n.present
	var zero V
	n.value, n.present = zero, false
	return previous, present
}

// visit walks the subtree rooted at this node in depth-first order, calling
// yield with a copy of the key path for every node holding a payload. The
// prefix is the element path from the trie's root to this node. It returns
// false once the consumer has stopped the iteration.
func (n *node[E, V]) visit(prefix []E, yield func([]E, V) bool) bool {
	if n.present {
		key := make([]E, len(prefix))
		copy(key, prefix)
		if !yield(key, n.value) {
			return false
		}
	}
	for element, child := range n.children {
		if !child.visit(append(prefix, element), yield) {
			return false
		}
	}
	return true
}
