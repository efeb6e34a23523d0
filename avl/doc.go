// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Keys are ordered by a comparison function supplied to New, or by
// cmp.Compare for NewOrdered.  Data is associated with each key and an
// insert with an existing key only overwrites that data.
//
// Heights are not stored in the nodes; they are recomputed from the
// sub-trees whenever a balance decision is required, so Size and
// Height cost O(n).
//
// Iterators and node pointers are only valid between mutations: a
// delete of a node with two children moves the successor's content
// into that node, and any rotation rewrites child and parent links.
package avl
