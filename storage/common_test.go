// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/storage"
)

const (
	testingDirName = "testing"
)

// common test setup routines

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// configure for testing
func setup(t *testing.T) string {
	setupTestLogger()
	database := filepath.Join(testingDirName, "test")
	err := storage.Initialise(database, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return database
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	teardownTestLogger()
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one(NEW)"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

// a key that must not exist
var nonExistantKey = []byte("/nonexistant")
