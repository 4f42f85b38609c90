// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ctrie_test

import (
	"fmt"
	"os"
	"sync"

	"github.com/absolutelightning/go-ctrie"
)

func ExampleTrie() {
	trie := ctrie.NewTrie[string]()
	trie.InsertString("hello", "world")
	trie.InsertString("hi", "there")

	v, ok := trie.GetString("hello")
	fmt.Println(v, ok)

	_, ok = trie.GetString("hel")
	fmt.Println(ok)

	fmt.Print(trie)
	// Output:
	// world true
	// false
	// └─h
	//   ├─e
	//   │ └─l
	//   │   └─l
	//   │     └─o : world
	//   └─i : there
}

func ExampleTrie_Delete() {
	trie := ctrie.NewTrie[int]()
	trie.InsertString("prefix1", 1)
	trie.InsertString("prefix2", 2)

	fmt.Println(trie.DeleteString("prefix1"))
	fmt.Println(trie.DeleteString("prefix1"))
	fmt.Println(trie.DeleteString("prefix"))
	fmt.Println(trie.Len(), trie.Nodes())
	// Output:
	// true
	// false
	// false
	// 1 7
}

func ExampleTrie_Update() {
	trie := ctrie.NewTrie[int]()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			trie.UpdateString("hits", func(old int, _ bool) int {
				return old + 1
			})
		}()
	}
	wg.Wait()

	hits, _ := trie.GetString("hits")
	fmt.Println(hits)
	// Output:
	// 10
}

func ExampleTrie_WriteTo() {
	trie := ctrie.NewTrie[float64]()
	trie.InsertString("pi", 3.14)
	trie.InsertString("e", 2.72)

	_, _ = trie.WriteTo(os.Stdout)
	// Output:
	// ├─e : 2.72
	// └─p
	//   └─i : 3.14
}
