// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - atomic counts of live connections
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned count safe for concurrent use
type Counter uint64

// Increment - add 1, returns new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Decrement - subtract 1, returns new value
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}

// Acquire - add 1 only while the count is below limit
//
// a successful Acquire must be paired with Release
func (c *Counter) Acquire(limit uint64) bool {
	for {
		n := atomic.LoadUint64((*uint64)(c))
		if n >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), n, n+1) {
			return true
		}
	}
}

// Release - give back one Acquire
func (c *Counter) Release() {
	c.Decrement()
}
