// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/whisperd/fault"
)

// DataAccess - batched access to one database
type DataAccess interface {
	Abort()
	Begin() error
	Commit() error
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Put([]byte, []byte)
}

// AccessData - leveldb batch with a read-your-writes cache
type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, trx *leveldb.Batch, cache Cache) DataAccess {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: trx,
		cache: cache,
	}
}

// Begin - mark the batch as in use
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionAlreadyInUse
	}
	d.inUse = true
	return nil
}

// Put - queue a write
func (d *AccessData) Put(key []byte, value []byte) {
	d.cache.Set(string(key), value)
	d.batch.Put(key, value)
}

// Commit - apply every queued write in one atomic leveldb write
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.TransactionNotStarted
	}
	err := d.db.Write(d.batch, nil)
	d.reset()
	return err
}

// Get - read through the pending writes, then the database
func (d *AccessData) Get(key []byte) ([]byte, error) {
	val, found := d.cache.Get(string(key))
	if found {
		return val, nil
	}
	return d.db.Get(key, nil)
}

// Has - check the pending writes, then the database
func (d *AccessData) Has(key []byte) (bool, error) {
	_, found := d.cache.Get(string(key))
	if found {
		return true, nil
	}
	return d.db.Has(key, nil)
}

// InUse - true between Begin and Commit or Abort
func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// Abort - discard every queued write
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()
	d.reset()
}

func (d *AccessData) reset() {
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}
