// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/account"
	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/storage"
)

const (
	testingDirName = "testing"
)

// fixed time for all records
var testTime = time.Unix(1700000000, 0)

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

func removeFiles() {
	os.RemoveAll(testingDirName)
}

// configure a ledger on a fresh database
func setup(t *testing.T) (*Ledger, *recorder) {
	setupTestLogger()
	err := storage.Initialise(filepath.Join(testingDirName, "test"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	pools := Pools{
		Confessions: storage.Pool.Confessions,
		Comments:    storage.Pool.Comments,
	}
	r := &recorder{}
	l := New(logger.New("ledger"), pools, address.NewDefault(), r, func() time.Time { return testTime })
	return l, r
}

func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// a fresh signer
func newSigner(t *testing.T) *account.PrivateKey {
	prv, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("new private key error: %s", err)
	}
	return prv
}

// sign an arbitrary message to obtain a capability
func authorise(t *testing.T, prv *account.PrivateKey) *account.Authorisation {
	message := []byte("authorise")
	auth, err := account.Authorise(prv.Account(), message, prv.Sign(message))
	if nil != err {
		t.Fatalf("authorise error: %s", err)
	}
	return auth
}

type published struct {
	topic string
	event interface{}
}

// records every event
type recorder struct {
	sync.Mutex
	events []published
	err    error
}

func (r *recorder) Publish(_ context.Context, topic string, event interface{}) error {
	r.Lock()
	defer r.Unlock()
	if nil != r.err {
		return r.err
	}
	r.events = append(r.events, published{topic: topic, event: event})
	return nil
}

func (r *recorder) Close() error {
	return nil
}

func (r *recorder) topics() []string {
	r.Lock()
	defer r.Unlock()
	topics := make([]string, 0, len(r.events))
	for _, e := range r.events {
		topics = append(topics, e.topic)
	}
	return topics
}
