// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Confessions *PoolHandle `prefix:"C"`
	Comments    *PoolHandle `prefix:"M"`
	TestData    *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentLedgerDBVersion = 0x100
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	database *leveldb.DB
	readOnly bool
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	ok := false

	if nil != poolData.database {
		return fault.AlreadyInitialised
	}

	defer func() {
		if !ok {
			dbClose()
		}
	}()

	ledgerDatabase := database + ".leveldb"

	db, version, err := getDB(ledgerDatabase, readOnly)
	if nil != err {
		return err
	}
	poolData.database = db
	poolData.readOnly = readOnly

	// ensure no database downgrade
	if version > currentLedgerDBVersion {
		logger.Criticalf("ledger database version: %d > current version: %d", version, currentLedgerDBVersion)
		return fmt.Errorf("ledger database version: %d > current version: %d", version, currentLedgerDBVersion)
	}

	if 0 == version {
		if readOnly {
			logger.Criticalf("ledger database has no version: %s", ledgerDatabase)
			return fmt.Errorf("ledger database has no version: %s", ledgerDatabase)
		}

		// database was empty so tag as current version
		err = putVersion(poolData.database, currentLedgerDBVersion)
		if err != nil {
			return err
		}
	}

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:   prefix,
			limit:    limit,
			database: poolData.database,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return nil
}

func dbClose() {
	if nil != poolData.database {
		poolData.database.Close()
		poolData.database = nil
	}
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// return:
//
//	databse handle
//	version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// NewDBTransaction - start an independent write transaction
//
// each caller gets its own batch and cache, so transactions on
// disjoint keys never block one another
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	db := poolData.database
	readOnly := poolData.readOnly
	poolData.RUnlock()

	if nil == db {
		return nil, fault.DatabaseIsNotSet
	}
	if readOnly {
		return nil, fault.DatabaseIsReadOnly
	}

	trx := newTransaction(newDA(db, new(leveldb.Batch), newCache()))
	if err := trx.Begin(); nil != err {
		return nil, err
	}
	return trx, nil
}
