// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Node - a node in the tree
type Node[K, V any] struct {
	left  *Node[K, V] // left sub-tree
	right *Node[K, V] // right sub-tree
	up    *Node[K, V] // points to parent node, never owning
	key   K           // key part for ordering
	value V           // value part for data storage
}

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root    *Node[K, V]
	count   int
	compare func(K, K) int
}

// New - create an initially empty tree ordered by compare
//
// compare(a, b) must return a negative number when a < b, zero when
// a == b and a positive number when a > b
func New[K, V any](compare func(K, K) int) *Tree[K, V] {
	return &Tree[K, V]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

// NewOrdered - create an initially empty tree using the natural
// ordering of the key type
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return New[K, V](cmp.Compare[K])
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Size - the height of the tree
//
// This is the height and not the number of items, so it is zero only
// for an empty tree.  Use Count for the number of items.
func (tree *Tree[K, V]) Size() int {
	return tree.Height()
}

// Height - number of levels in the tree, recomputed on each call
func (tree *Tree[K, V]) Height() int {
	return tree.root.height()
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Compare - the ordering function of the tree
func (tree *Tree[K, V]) Compare(a K, b K) int {
	return tree.compare(a, b)
}

// Clear - remove all nodes
//
// every node is unlinked, children before parents, so that a stale
// iterator cannot keep the rest of the tree reachable
func (tree *Tree[K, V]) Clear() {
	if nil == tree.root {
		return
	}

	// root, right, left order reversed is left, right, root
	order := make([]*Node[K, V], 0, tree.count)
	stack := []*Node[K, V]{tree.root}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, p)
		if nil != p.left {
			stack = append(stack, p.left)
		}
		if nil != p.right {
			stack = append(stack, p.right)
		}
	}
	for i := len(order) - 1; i >= 0; i -= 1 {
		order[i].unlink()
	}

	tree.root = nil
	tree.count = 0
}

// Copy - create an independent tree with the same content
//
// items are re-inserted in order so the shape of the result may
// differ from the source
func (tree *Tree[K, V]) Copy() *Tree[K, V] {
	t := New[K, V](tree.compare)
	for p := tree.First(); nil != p; p = p.Next() {
		t.Insert(p.key, p.value)
	}
	return t
}

// Ref - pointer to the value stored for key, a zero value is inserted
// first if the key is not present
func (tree *Tree[K, V]) Ref(key K) *V {
	p := tree.Search(key)
	if nil == p {
		var zero V
		tree.Insert(key, zero)
		p = tree.Search(key)
	}
	return &p.value
}

// internal: attach a new root
func (tree *Tree[K, V]) setRoot(p *Node[K, V]) {
	tree.root = p
	if nil != p {
		p.up = nil
	}
}

// internal: attach a left sub-tree and fix its parent pointer
func (p *Node[K, V]) setLeft(q *Node[K, V]) {
	p.left = q
	if nil != q {
		q.up = p
	}
}

// internal: attach a right sub-tree and fix its parent pointer
func (p *Node[K, V]) setRight(q *Node[K, V]) {
	p.right = q
	if nil != q {
		q.up = p
	}
}

// internal: drop all links
func (p *Node[K, V]) unlink() {
	p.left = nil
	p.right = nil
	p.up = nil
}

// internal: height of a sub-tree, nil is zero and a leaf is one
func (p *Node[K, V]) height() int {
	if nil == p {
		return 0
	}
	return 1 + max(p.left.height(), p.right.height())
}

// internal: left height minus right height
func (p *Node[K, V]) balanceFactor() int {
	if nil == p {
		return 0
	}
	return p.left.height() - p.right.height()
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	nodes := []*Node[K, V]{}

	if depth == 0 {
		nodes = []*Node[K, V]{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// ValuePtr - reference to the value stored in the node
func (p *Node[K, V]) ValuePtr() *V {
	return &p.value
}

// SetValue - replace the value stored in the node
func (p *Node[K, V]) SetValue(value V) {
	p.value = value
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Left - return left child of a node
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return right child of a node
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
