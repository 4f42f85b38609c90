// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ctrie

const maxChildren = 256

// Node is a single edge of the trie. Every node owns up to 256 children,
// one per byte value, and optionally a leaf carrying the value of the key
// that ends here.
type Node[T any] struct {
	key         byte
	numChildren uint16
	children    [maxChildren]*Node[T]
	leaf        *NodeLeaf[T]

	// parent is only followed upwards while pruning. It is cleared when the
	// node is detached.
	parent *Node[T]
}

func newNode[T any](parent *Node[T], key byte) *Node[T] {
	return &Node[T]{
		parent: parent,
		key:    key,
	}
}

func (n *Node[T]) getKey() byte {
	return n.key
}

func (n *Node[T]) getParent() *Node[T] {
	return n.parent
}

func (n *Node[T]) getNumChildren() int {
	return int(n.numChildren)
}

func (n *Node[T]) getChild(c byte) *Node[T] {
	return n.children[c]
}

// setChild installs child at slot c and returns it. Any previous occupant
// is detached first.
func (n *Node[T]) setChild(c byte, child *Node[T]) *Node[T] {
	n.removeChild(c)
	if child == nil {
		return nil
	}
	child.parent = n
	child.key = c
	n.children[c] = child
	n.numChildren++
	return child
}

// removeChild detaches the subtree at slot c.
func (n *Node[T]) removeChild(c byte) {
	old := n.children[c]
	if old == nil {
		return
	}
	old.parent = nil
	n.children[c] = nil
	n.numChildren--
}

// hasChildren scans every slot. The cached count must agree with the scan.
func (n *Node[T]) hasChildren() bool {
	found := n.nextChild(0) >= 0
	if found != (n.numChildren > 0) {
		panic("ctrie: child count out of sync with child slots")
	}
	return found
}

// nextChild returns the lowest occupied slot >= c, or -1.
func (n *Node[T]) nextChild(c int) int {
	for i := c; i < maxChildren; i++ {
		if n.children[i] != nil {
			return i
		}
	}
	return -1
}

func (n *Node[T]) hasValue() bool {
	return n.leaf != nil
}

func (n *Node[T]) getValue() (T, bool) {
	if n.leaf == nil {
		var zero T
		return zero, false
	}
	return n.leaf.getValue(), true
}

// setValue replaces any stored value.
func (n *Node[T]) setValue(value T) {
	if n.leaf != nil {
		n.leaf.setValue(value)
		return
	}
	n.leaf = newNodeLeaf(value)
}

func (n *Node[T]) clearValue() {
	n.leaf = nil
}

// isDead reports whether a non-root node has neither a value nor children
// and must be pruned.
func (n *Node[T]) isDead() bool {
	return n.parent != nil && !n.hasValue() && !n.hasChildren()
}
