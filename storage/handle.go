// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - the structure for a pool of data
type PoolHandle struct {
	prefix   byte
	limit    []byte
	database *leveldb.DB
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a committed value for a given key
//
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return nil
	}
	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// Has - check if a committed key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return false
	}
	value, err := p.database.Has(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Has", err)
	return value
}
