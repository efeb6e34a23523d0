// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value of
// an existing key without changing the shape of the tree
//
// returns true if a node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	if p := tree.Search(key); nil != p {
		p.value = value
		return false
	}
	n := &Node[K, V]{
		key:   key,
		value: value,
	}
	tree.setRoot(tree.insert(tree.root, n))
	tree.count += 1
	return true
}

// internal routine for insert
// returns the possibly new root of the sub-tree
func (tree *Tree[K, V]) insert(p *Node[K, V], n *Node[K, V]) *Node[K, V] {
	if nil == p {
		return n
	}
	if tree.compare(n.key, p.key) < 0 {
		p.setLeft(tree.insert(p.left, n))
	} else {
		p.setRight(tree.insert(p.right, n))
	}
	return rebalance(p)
}

// internal: restore the height balance of a sub-tree whose children
// differ in height by at most two
// returns the new root of the sub-tree, its up pointer is left for
// the caller to set
func rebalance[K, V any](p *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}
	switch b := p.balanceFactor(); {
	case b > 1: // left branch too high
		if p.left.balanceFactor() < 0 {
			// double LR rotation
			p.setLeft(rotateLeft(p.left))
		}
		return rotateRight(p)
	case b < -1: // right branch too high
		if p.right.balanceFactor() > 0 {
			// double RL rotation
			p.setRight(rotateRight(p.right))
		}
		return rotateLeft(p)
	}
	return p
}

// internal: single LL rotation
func rotateRight[K, V any](p *Node[K, V]) *Node[K, V] {
	p1 := p.left
	p.setLeft(p1.right)
	p1.setRight(p)
	return p1
}

// internal: single RR rotation
func rotateLeft[K, V any](p *Node[K, V]) *Node[K, V] {
	p1 := p.right
	p.setRight(p1.left)
	p1.setLeft(p)
	return p1
}
