// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/whisperd/storage"
)

func TestWriteThenRead(t *testing.T) {
	cache := storage.NewCache()

	key := "test"
	expected := []byte{'a', 'b', 'c', 'd'}

	_, found := cache.Get(key)
	assert.False(t, found, "key %s already exists", key)

	cache.Set(key, expected)
	actual, found := cache.Get(key)
	assert.True(t, found, "key %s not found", key)
	assert.Equal(t, expected, actual, "value")
}

func TestClear(t *testing.T) {
	cache := storage.NewCache()

	cache.Set("one", []byte("1"))
	cache.Set("two", []byte("2"))
	cache.Clear()

	_, found := cache.Get("one")
	assert.False(t, found, "one cleared")
	_, found = cache.Get("two")
	assert.False(t, found, "two cleared")
}
