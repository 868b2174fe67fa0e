// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/whisperd/address"
)

func TestLockDuplicates(t *testing.T) {
	s := newLockSet()
	a := address.Address{1}

	unlock := s.lock(a, a, a)
	assert.Equal(t, 1, s.size(), "one entry")
	unlock()
	assert.Equal(t, 0, s.size(), "released")
}

func TestLockExcludes(t *testing.T) {
	s := newLockSet()
	a := address.Address{1}
	b := address.Address{2}

	unlock := s.lock(a)

	acquired := make(chan struct{})
	go func() {
		release := s.lock(b, a)
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("acquired a held address")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	<-acquired
}

func TestLockDisjoint(t *testing.T) {
	s := newLockSet()
	a := address.Address{1}
	b := address.Address{2}

	unlock := s.lock(a)
	defer unlock()

	done := make(chan struct{})
	go func() {
		s.lock(b)()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disjoint address blocked")
	}
}

func TestLockOrder(t *testing.T) {
	s := newLockSet()
	a := address.Address{1}
	b := address.Address{2}

	var wg sync.WaitGroup
	for i := 0; i < 100; i += 1 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.lock(a, b)()
		}()
		go func() {
			defer wg.Done()
			s.lock(b, a)()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, s.size(), "all released")
}
