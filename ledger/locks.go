// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"sort"
	"sync"

	"github.com/bitmark-inc/whisperd/address"
)

// per address exclusive access
//
// entries exist only while some operation holds or waits for them
type lockSet struct {
	sync.Mutex
	entries map[address.Address]*lockEntry
}

type lockEntry struct {
	sync.Mutex
	users int
}

func newLockSet() *lockSet {
	return &lockSet{
		entries: make(map[address.Address]*lockEntry),
	}
}

// acquire every address in sorted order so two operations sharing
// addresses can never deadlock, returns the release function
func (s *lockSet) lock(addresses ...address.Address) func() {
	sorted := make([]address.Address, 0, len(addresses))
	seen := make(map[address.Address]struct{}, len(addresses))
	for _, a := range addresses {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		sorted = append(sorted, a)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i][:], sorted[j][:]) < 0
	})

	held := make([]*lockEntry, 0, len(sorted))
	for _, a := range sorted {
		s.Lock()
		e, ok := s.entries[a]
		if !ok {
			e = &lockEntry{}
			s.entries[a] = e
		}
		e.users += 1
		s.Unlock()

		e.Lock()
		held = append(held, e)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i -= 1 {
			held[i].Unlock()

			s.Lock()
			held[i].users -= 1
			if 0 == held[i].users {
				delete(s.entries, sorted[i])
			}
			s.Unlock()
		}
	}
}

// number of addresses currently tracked
func (s *lockSet) size() int {
	s.Lock()
	defer s.Unlock()
	return len(s.entries)
}
