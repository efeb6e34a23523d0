// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dictionary - a named ordered map backed by an AVL tree with
// union, intersection and complement operations
//
// Set operations never modify their operands; each returns a new
// dictionary carrying the receiver's name.
package dictionary
