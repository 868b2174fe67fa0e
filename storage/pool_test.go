// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/storage"
)

// helper to add to pool in a single transaction
func poolPut(t *testing.T, p *storage.PoolHandle, elements ...stringElement) {
	trx, err := storage.NewDBTransaction()
	if !assert.Nil(t, err, "new transaction") {
		t.FailNow()
	}
	for _, e := range elements {
		trx.Put(p, []byte(e.key), []byte(e.value))
	}
	assert.Nil(t, trx.Commit(), "commit")
}

// main pool test
func TestPool(t *testing.T) {
	database := setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	// ensure that pool was empty
	checkCount(t, p, 0)

	poolPut(t, p,
		stringElement{"key-one", "data-one"},
		stringElement{"key-two", "data-two"},
		stringElement{"key-three", "data-three"},
	)
	poolPut(t, p,
		stringElement{"key-four", "data-four"},
		stringElement{"key-five", "data-five"},
		stringElement{"key-one", "data-one(NEW)"}, // duplicate
	)

	checkResults(t, p)

	// other pools are unaffected
	checkCount(t, storage.Pool.Confessions, 0)
	checkCount(t, storage.Pool.Comments, 0)

	// check that restarting database keeps data
	storage.Finalise()
	err := storage.Initialise(database, storage.ReadWrite)
	assert.Nil(t, err, "reopen")
	checkResults(t, storage.Pool.TestData)
}

func TestReadOnly(t *testing.T) {
	database := setup(t)
	defer teardown(t)

	poolPut(t, storage.Pool.TestData, stringElement{"key-one", "data-one"})
	storage.Finalise()

	err := storage.Initialise(database, storage.ReadOnly)
	if !assert.Nil(t, err, "read only open") {
		return
	}
	assert.Equal(t, []byte("data-one"), storage.Pool.TestData.Get([]byte("key-one")), "committed data")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.DatabaseIsReadOnly, err, "no writes")
}

func TestDoubleInitialise(t *testing.T) {
	database := setup(t)
	defer teardown(t)

	err := storage.Initialise(database, storage.ReadWrite)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")
}

func TestNotInitialised(t *testing.T) {
	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.DatabaseIsNotSet, err, "no database")
}

func checkResults(t *testing.T, p *storage.PoolHandle) {
	for _, e := range expectedElements {
		assert.Equal(t, e.Value, p.Get(e.Key), "key: %s", e.Key)
		assert.True(t, p.Has(e.Key), "has key: %s", e.Key)
	}
	assert.Nil(t, p.Get(nonExistantKey), "missing key")
	assert.False(t, p.Has(nonExistantKey), "missing key")

	// cursor walks in key order
	n := 0
	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if n < len(expectedElements) {
			assert.Equal(t, expectedElements[n].Key, key, "cursor key %d", n)
			assert.Equal(t, expectedElements[n].Value, value, "cursor value %d", n)
		}
		n += 1
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, len(expectedElements), n, "element count")
}

func checkCount(t *testing.T, p *storage.PoolHandle, expected uint64) {
	n, err := p.NewFetchCursor().Count()
	assert.Nil(t, err, "count")
	assert.Equal(t, expected, n, "count")
}
