// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/whisperd/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if cursor == nil {
		return fault.InvalidCursor
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return fault.DatabaseIsNotSet
	}

	iter := cursor.pool.database.NewIterator(&cursor.maxRange, nil)

	var err error
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if err != nil {
			break iterating
		}
	}
	iter.Release()
	if err == nil {
		err = iter.Error()
	}
	return err
}

// Count - number of elements in the range
func (cursor *FetchCursor) Count() (uint64, error) {
	n := uint64(0)
	err := cursor.Map(func(key []byte, value []byte) error {
		n += 1
		return nil
	})
	return n, err
}
