// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ctrie

import (
	"fmt"
	"io"
	"strings"
)

const (
	interiorConnector = "├─"
	lastConnector     = "└─"
	valueSeparator    = " : "
)

// String renders the trie as a tree, one node per line, siblings in
// ascending byte order:
//
//	└─h
//	  ├─e
//	  │ └─l
//	  │   └─l
//	  │     └─o : world
//	  └─i : there
//
// The root has no line of its own. An empty trie renders as "".
func (t *Trie[T]) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.render()
}

// WriteTo writes the rendering produced by String to w. The tree is
// rendered under the lock and written after releasing it.
func (t *Trie[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}

func (t *Trie[T]) render() string {
	if t.root == nil {
		return ""
	}
	sb := new(strings.Builder)
	it := newWalker(t.root)
	for it.Next() {
		writeNode(sb, it.pos)
	}
	return sb.String()
}

func writeNode[T any](sb *strings.Builder, e walkEntry[T]) {
	sb.WriteString(e.prefix)
	if e.last {
		sb.WriteString(lastConnector)
	} else {
		sb.WriteString(interiorConnector)
	}
	writeLabel(sb, e.node.getKey())
	if v, ok := e.node.getValue(); ok {
		sb.WriteString(valueSeparator)
		fmt.Fprintf(sb, "%v", v)
	}
	sb.WriteByte('\n')
}

// writeLabel prints printable ASCII as is and everything else as \xNN.
func writeLabel(sb *strings.Builder, c byte) {
	if c >= 0x20 && c < 0x7f {
		sb.WriteByte(c)
		return
	}
	fmt.Fprintf(sb, "\\x%02x", c)
}
