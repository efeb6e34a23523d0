// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dictionary

import (
	"cmp"
	"iter"

	"github.com/bitmark-inc/dictionary/avl"
	"github.com/bitmark-inc/dictionary/fault"
)

// DefaultName - name given to a dictionary created without one
const DefaultName = "dictionary"

// Dictionary - a named ordered map
type Dictionary[K, V any] struct {
	data *avl.Tree[K, V]
	name string
}

// New - create an empty dictionary using the natural key order
func New[K cmp.Ordered, V any](name string) *Dictionary[K, V] {
	return NewWithCompare[K, V](name, cmp.Compare[K])
}

// NewWithCompare - create an empty dictionary with a specific key order
func NewWithCompare[K, V any](name string, compare func(K, K) int) *Dictionary[K, V] {
	if "" == name {
		name = DefaultName
	}
	return &Dictionary[K, V]{
		data: avl.New[K, V](compare),
		name: name,
	}
}

// Copy - deep copy of the name and content
func (d *Dictionary[K, V]) Copy() *Dictionary[K, V] {
	return &Dictionary[K, V]{
		data: d.data.Copy(),
		name: d.name,
	}
}

// Name - current label of the dictionary
func (d *Dictionary[K, V]) Name() string {
	return d.name
}

// ChangeName - set a new label
func (d *Dictionary[K, V]) ChangeName(name string) {
	d.name = name
}

// Size - height of the underlying tree, zero only when empty
func (d *Dictionary[K, V]) Size() int {
	return d.data.Size()
}

// Count - number of items
func (d *Dictionary[K, V]) Count() int {
	return d.data.Count()
}

// IsEmpty - true if there are no items
func (d *Dictionary[K, V]) IsEmpty() bool {
	return d.data.IsEmpty()
}

// Insert - add an item or overwrite the value of an existing key
func (d *Dictionary[K, V]) Insert(key K, value V) {
	d.data.Insert(key, value)
}

// InsertFrom - add the item an iterator refers to
func (d *Dictionary[K, V]) InsertFrom(it avl.Iterator[K, V]) {
	d.data.Insert(it.Key(), it.Value())
}

// Find - iterator at key, an error if the key is not present
func (d *Dictionary[K, V]) Find(key K) (avl.Iterator[K, V], error) {
	it := d.data.Find(key)
	if !it.Valid() {
		return it, fault.ErrKeyNotFound
	}
	return it, nil
}

// Get - value stored for key
func (d *Dictionary[K, V]) Get(key K) (V, error) {
	p := d.data.Search(key)
	if nil == p {
		var zero V
		return zero, fault.ErrKeyNotFound
	}
	return p.Value(), nil
}

// Lookup - value stored for key, a zero value is inserted first if
// the key is not present
func (d *Dictionary[K, V]) Lookup(key K) V {
	return *d.data.Ref(key)
}

// Contains - true if key is present
func (d *Dictionary[K, V]) Contains(key K) bool {
	return d.data.Contains(key)
}

// Erase - remove key if present
func (d *Dictionary[K, V]) Erase(key K) {
	d.data.Delete(key)
}

// Clear - remove all items, keeps the name
func (d *Dictionary[K, V]) Clear() {
	d.data.Clear()
}

// Begin - iterator at the lowest key
func (d *Dictionary[K, V]) Begin() avl.Iterator[K, V] {
	return d.data.Begin()
}

// End - the position after the highest key
func (d *Dictionary[K, V]) End() avl.Iterator[K, V] {
	return d.data.End()
}

// CBegin - read-only iterator at the lowest key
func (d *Dictionary[K, V]) CBegin() avl.ConstIterator[K, V] {
	return d.data.CBegin()
}

// CEnd - read-only end position
func (d *Dictionary[K, V]) CEnd() avl.ConstIterator[K, V] {
	return d.data.CEnd()
}

// All - key/value pairs in increasing key order
func (d *Dictionary[K, V]) All() iter.Seq2[K, V] {
	return d.data.All()
}

// Depth - number of links between the root and the node holding key
func (d *Dictionary[K, V]) Depth(key K) (uint, error) {
	p := d.data.Search(key)
	if nil == p {
		return 0, fault.ErrKeyNotFound
	}
	return p.Depth(), nil
}

// Level - keys of the nodes at a depth below the root, in order
func (d *Dictionary[K, V]) Level(depth uint) []K {
	root := d.data.Root()
	if nil == root {
		return nil
	}
	nodes := root.GetChildrenByDepth(depth)
	keys := make([]K, len(nodes))
	for i, p := range nodes {
		keys[i] = p.Key()
	}
	return keys
}
