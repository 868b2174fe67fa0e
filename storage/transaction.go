// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - all writes of one ledger operation
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
}

type transactionData struct {
	access DataAccess
}

func newTransaction(access DataAccess) Transaction {
	return &transactionData{
		access: access,
	}
}

// Begin - start collecting writes
func (t *transactionData) Begin() error {
	return t.access.Begin()
}

// Put - queue a key/value bytes pair for the pool
func (t *transactionData) Put(p *PoolHandle, key []byte, value []byte) {
	t.access.Put(p.prefixKey(key), value)
}

// Get - read a value, pending writes of this transaction first
//
// nil if the key does not exist
func (t *transactionData) Get(p *PoolHandle, key []byte) []byte {
	value, err := t.access.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

// Has - check a key, pending writes of this transaction first
func (t *transactionData) Has(p *PoolHandle, key []byte) bool {
	found, err := t.access.Has(p.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return found
}

// Commit - write everything or nothing
func (t *transactionData) Commit() error {
	return t.access.Commit()
}

// Abort - drop all pending writes
func (t *transactionData) Abort() {
	t.access.Abort()
}

// InUse - transaction is open
func (t *transactionData) InUse() bool {
	return t.access.InUse()
}
