// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"sync/atomic"
)

// a 64 bit unsigned integer that can be incremented and read
// concurrently
type counter uint64

// add 1 to a counter, returns new value
func (ic *counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// current value
func (ic *counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}
