// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/dictionary/fault"
)

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[K, V]) Next() *Node[K, V] {
	if p.right != nil {
		return p.right.first()
	}
	child := p
	up := p.up
	for up != nil && up.right == child {
		child = up
		up = up.up
	}
	return up
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node[K, V]) Prev() *Node[K, V] {
	if p.left != nil {
		return p.left.last()
	}
	child := p
	up := p.up
	for up != nil && up.left == child {
		child = up
		up = up.up
	}
	return up
}

// Iterator - a bidirectional cursor over the nodes of a tree
//
// the zero value is the end position
type Iterator[K, V any] struct {
	current *Node[K, V]
}

// IteratorAt - iterator positioned at a node, nil gives the end position
func IteratorAt[K, V any](p *Node[K, V]) Iterator[K, V] {
	return Iterator[K, V]{current: p}
}

// Begin - iterator at the lowest key, equal to End for an empty tree
func (tree *Tree[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{current: tree.First()}
}

// End - the position after the highest key
func (tree *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{}
}

// Valid - true if not at the end position
func (it Iterator[K, V]) Valid() bool {
	return nil != it.current
}

// Equal - true if both iterators refer to the same node
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.current == other.current
}

// Node - the current node, nil at the end position
func (it Iterator[K, V]) Node() *Node[K, V] {
	return it.current
}

// Key - key of the current item
func (it Iterator[K, V]) Key() K {
	return it.node().key
}

// Value - copy of the value of the current item
func (it Iterator[K, V]) Value() V {
	return it.node().value
}

// ValuePtr - reference to the value stored in the current item
func (it Iterator[K, V]) ValuePtr() *V {
	return &it.node().value
}

// SetValue - replace the value of the current item
func (it Iterator[K, V]) SetValue(value V) {
	it.node().value = value
}

// Next - advance to the next highest key
func (it *Iterator[K, V]) Next() {
	it.current = it.node().Next()
}

// Prev - step back to the next lowest key
func (it *Iterator[K, V]) Prev() {
	it.current = it.node().Prev()
}

// Const - read-only view of the same position
func (it Iterator[K, V]) Const() ConstIterator[K, V] {
	return ConstIterator[K, V]{current: it.current}
}

// internal: dereference, the end position has no node
func (it Iterator[K, V]) node() *Node[K, V] {
	if nil == it.current {
		panic(fault.ErrEndIterator)
	}
	return it.current
}

// ConstIterator - a bidirectional cursor that cannot modify values
type ConstIterator[K, V any] struct {
	current *Node[K, V]
}

// CBegin - read-only iterator at the lowest key
func (tree *Tree[K, V]) CBegin() ConstIterator[K, V] {
	return ConstIterator[K, V]{current: tree.First()}
}

// CEnd - read-only end position
func (tree *Tree[K, V]) CEnd() ConstIterator[K, V] {
	return ConstIterator[K, V]{}
}

// Valid - true if not at the end position
func (it ConstIterator[K, V]) Valid() bool {
	return nil != it.current
}

// Equal - true if both iterators refer to the same node
func (it ConstIterator[K, V]) Equal(other ConstIterator[K, V]) bool {
	return it.current == other.current
}

// Key - key of the current item
func (it ConstIterator[K, V]) Key() K {
	return it.node().key
}

// Value - copy of the value of the current item
func (it ConstIterator[K, V]) Value() V {
	return it.node().value
}

// Next - advance to the next highest key
func (it *ConstIterator[K, V]) Next() {
	it.current = it.node().Next()
}

// Prev - step back to the next lowest key
func (it *ConstIterator[K, V]) Prev() {
	it.current = it.node().Prev()
}

func (it ConstIterator[K, V]) node() *Node[K, V] {
	if nil == it.current {
		panic(fault.ErrEndIterator)
	}
	return it.current
}

// All - key/value pairs in increasing key order
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.First(); nil != p; p = p.Next() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Backward - key/value pairs in decreasing key order
func (tree *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.Last(); nil != p; p = p.Prev() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}
