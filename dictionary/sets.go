// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dictionary

// Union - all keys of both dictionaries, the receiver's value is kept
// for a key present in both
func (d *Dictionary[K, V]) Union(other *Dictionary[K, V]) *Dictionary[K, V] {
	result := other.Copy()
	for it := d.CBegin(); it.Valid(); it.Next() {
		result.Insert(it.Key(), it.Value())
	}
	result.name = d.name
	return result
}

// Intersect - items of the receiver whose key is also in other
func (d *Dictionary[K, V]) Intersect(other *Dictionary[K, V]) *Dictionary[K, V] {
	return d.filter(func(key K) bool {
		return other.Contains(key)
	})
}

// Complement - items of the receiver whose key is not in other
func (d *Dictionary[K, V]) Complement(other *Dictionary[K, V]) *Dictionary[K, V] {
	return d.filter(func(key K) bool {
		return !other.Contains(key)
	})
}

// internal: new dictionary with the same name and order holding the
// receiver's items selected by keep
func (d *Dictionary[K, V]) filter(keep func(K) bool) *Dictionary[K, V] {
	result := NewWithCompare[K, V](d.name, d.data.Compare)
	for it := d.CBegin(); it.Valid(); it.Next() {
		if keep(it.Key()) {
			result.Insert(it.Key(), it.Value())
		}
	}
	return result
}
