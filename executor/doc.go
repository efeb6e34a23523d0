// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package executor holds a catalogue of named integer/string
// dictionaries and applies a line oriented command language to them
//
// datasets are loaded one per line:
//
//	name key1 value1 key2 value2 ...
//
// and each command line produces at most one line of output, except
// tree which draws one line per node
package executor
