// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ctrie

// walker visits every node below a starting node in pre-order, siblings in
// ascending byte order. It keeps its frontier on an explicit stack so the
// walk depth is bounded by memory, not by the goroutine stack.
type walker[T any] struct {
	// node is the starting node; it is not visited itself.
	node *Node[T]

	// stack keeps track of edges in the frontier.
	stack []walkEntry[T]

	// pos is the current position of the walker.
	pos walkEntry[T]
}

// walkEntry is a frontier edge together with the rendering context
// inherited from its ancestors.
type walkEntry[T any] struct {
	node   *Node[T]
	depth  int
	last   bool
	prefix string
}

func newWalker[T any](n *Node[T]) *walker[T] {
	return &walker[T]{node: n}
}

// Next advances to the next node and reports whether there is one.
func (w *walker[T]) Next() bool {
	if w.stack == nil && w.node != nil {
		w.stack = make([]walkEntry[T], 0, 16)
		w.push(w.node, walkEntry[T]{})
		w.node = nil
	}

	if len(w.stack) == 0 {
		w.pos = walkEntry[T]{}
		return false
	}

	n := len(w.stack)
	w.pos = w.stack[n-1]
	w.stack = w.stack[:n-1]
	w.push(w.pos.node, w.pos)
	return true
}

// push adds the children of parent to the frontier, highest byte first so
// the lowest byte is popped next.
func (w *walker[T]) push(parent *Node[T], from walkEntry[T]) {
	if parent.getNumChildren() == 0 {
		return
	}
	childPrefix := from.prefix
	if from.node != nil {
		if from.last {
			childPrefix += "  "
		} else {
			childPrefix += "│ "
		}
	}
	last := true
	for i := maxChildren - 1; i >= 0; i-- {
		child := parent.children[i]
		if child == nil {
			continue
		}
		w.stack = append(w.stack, walkEntry[T]{
			node:   child,
			depth:  from.depth + 1,
			last:   last,
			prefix: childPrefix,
		})
		last = false
	}
}
