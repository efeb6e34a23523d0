// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
// returns nil if the key is not in the tree
func (tree *Tree[K, V]) Search(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Find - iterator positioned at a specific item, or the end iterator
// if the key is not in the tree
func (tree *Tree[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{current: tree.Search(key)}
}

// Contains - true if the key is in the tree
func (tree *Tree[K, V]) Contains(key K) bool {
	return nil != tree.Search(key)
}
