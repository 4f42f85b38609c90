// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ctrie

// NodeLeaf holds the value stored at the node where a key ends.
type NodeLeaf[T any] struct {
	value T
}

func newNodeLeaf[T any](value T) *NodeLeaf[T] {
	return &NodeLeaf[T]{value: value}
}

func (l *NodeLeaf[T]) getValue() T {
	return l.value
}

func (l *NodeLeaf[T]) setValue(value T) {
	l.value = value
}
