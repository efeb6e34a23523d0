// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/dictionary/fault"
)

// Delete - removes a specific item from the tree
// returns the value that was stored and true if the key was present
func (tree *Tree[K, V]) Delete(key K) (V, bool) {
	p := tree.Search(key)
	if nil == p {
		var zero V
		return zero, false
	}
	value := p.value // preserve the value part
	tree.setRoot(tree.delete(tree.root, key))
	tree.count -= 1
	return value, true
}

// Erase - remove the node that an iterator refers to
//
// the iterator must not be at the end position, it and all other
// iterators are invalid afterwards
func (tree *Tree[K, V]) Erase(it Iterator[K, V]) {
	if nil == it.current {
		panic(fault.ErrEraseAbsentNode)
	}
	tree.Delete(it.current.key)
}

// internal delete routine
// returns the possibly new root of the sub-tree
func (tree *Tree[K, V]) delete(p *Node[K, V], key K) *Node[K, V] {
	if nil == p { // key not in tree
		return nil
	}
	switch c := tree.compare(key, p.key); {
	case c < 0:
		p.setLeft(tree.delete(p.left, key))
	case c > 0:
		p.setRight(tree.delete(p.right, key))
	default: // found: delete p
		if nil == p.right {
			q := p.left
			p.unlink()
			return q
		}
		if nil == p.left {
			q := p.right
			p.unlink()
			return q
		}

		// take over the content of the in-order successor and
		// remove the successor's node instead
		s := p.right.first()
		p.key = s.key
		p.value = s.value
		p.setRight(tree.delete(p.right, s.key))
	}
	return rebalance(p)
}
