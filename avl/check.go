// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return checkUp(tree.root, nil)
}

// internal: consistency checker
func checkUp[K, V any](p *Node[K, V], up *Node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkUp(p.left, p) {
		return false
	}
	return checkUp(p.right, p)
}

// CheckBalance - check that no node has sub-trees differing in height
// by more than one
func (tree *Tree[K, V]) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// internal: returns height of the sub-tree and whether it is balanced
func checkBalance[K, V any](p *Node[K, V]) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkBalance(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(p.right)
	if !ok {
		return 0, false
	}
	if d := lh - rh; d < -1 || d > 1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}

// CheckOrder - check that an in-order traversal gives strictly
// increasing keys
func (tree *Tree[K, V]) CheckOrder() bool {
	p := tree.First()
	if nil == p {
		return true
	}
	for q := p.Next(); nil != q; q = q.Next() {
		if tree.compare(p.key, q.key) >= 0 {
			return false
		}
		p = q
	}
	return true
}

// CheckCount - check that the number of reachable nodes matches Count
func (tree *Tree[K, V]) CheckCount() bool {
	return countNodes(tree.root) == tree.count
}

func countNodes[K, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}
