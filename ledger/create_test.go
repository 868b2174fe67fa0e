// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/events"
	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/record"
	"github.com/bitmark-inc/whisperd/storage"
	"github.com/bitmark-inc/whisperd/storage/mocks"
)

func TestCreateConfession(t *testing.T) {
	l, r := setup(t)
	defer teardown(t)

	author := authorise(t, newSigner(t))
	target, nonce, err := l.Deriver().Confession(author.Key())
	assert.Nil(t, err, "derive")

	c, err := l.CreateConfession(author, "ipfs://abc", target)
	assert.Nil(t, err, "create")
	assert.Equal(t, author.Key(), c.Author, "author")
	assert.Equal(t, "ipfs://abc", c.ContentURI, "uri")
	assert.Equal(t, uint64(0), c.LikeCount, "likes")
	assert.Equal(t, uint64(0), c.CommentCount, "comments")
	assert.Equal(t, testTime.Unix(), c.Timestamp, "timestamp")
	assert.Equal(t, nonce, c.Nonce, "nonce")

	stored, err := l.Confession(target)
	assert.Nil(t, err, "read back")
	assert.Equal(t, c, stored, "stored record")

	packed := storage.Pool.Confessions.Get(target[:])
	assert.Equal(t, record.ConfessionSpace, len(packed), "allocation")

	assert.Equal(t, []string{events.TopicConfessionCreated}, r.topics(), "events")
}

func TestCreateConfessionOncePerAuthor(t *testing.T) {
	l, _ := setup(t)
	defer teardown(t)

	author := authorise(t, newSigner(t))
	target, _, _ := l.Deriver().Confession(author.Key())

	_, err := l.CreateConfession(author, "ipfs://first", target)
	assert.Nil(t, err, "first")

	_, err = l.CreateConfession(author, "ipfs://second", target)
	assert.Equal(t, fault.AddressAlreadyOccupied, err, "second")

	stored, err := l.Confession(target)
	assert.Nil(t, err, "read back")
	assert.Equal(t, "ipfs://first", stored.ContentURI, "first remains")
}

func TestCreateConfessionContentLength(t *testing.T) {
	l, _ := setup(t)
	defer teardown(t)

	tests := []struct {
		uri string
		err error
	}{
		{"", fault.EmptyContentUri},
		{strings.Repeat("x", 201), fault.ContentUriTooLong},
		{strings.Repeat("x", 1000), fault.ContentUriTooLong},
		{"x", nil},
		{strings.Repeat("x", 200), nil},
	}

	for i, test := range tests {
		author := authorise(t, newSigner(t))
		target, _, _ := l.Deriver().Confession(author.Key())

		c, err := l.CreateConfession(author, test.uri, target)
		assert.Equal(t, test.err, err, "%d: error", i)
		if nil != test.err {
			assert.Nil(t, c, "%d: record", i)
			assert.False(t, storage.Pool.Confessions.Has(target[:]), "%d: nothing stored", i)
			continue
		}
		assert.Equal(t, test.uri, c.ContentURI, "%d: uri", i)
	}
}

func TestCreateConfessionWrongAddress(t *testing.T) {
	l, r := setup(t)
	defer teardown(t)

	author := authorise(t, newSigner(t))
	other := authorise(t, newSigner(t))
	target, _, _ := l.Deriver().Confession(other.Key())

	_, err := l.CreateConfession(author, "ipfs://abc", target)
	assert.Equal(t, fault.AddressMismatch, err, "address of another author")
	assert.False(t, storage.Pool.Confessions.Has(target[:]), "nothing stored")
	assert.Empty(t, r.topics(), "no events")
}

func TestCreateConfessionMissingSignature(t *testing.T) {
	l, _ := setup(t)
	defer teardown(t)

	_, err := l.CreateConfession(nil, "ipfs://abc", address.Address{})
	assert.Equal(t, fault.MissingSignature, err, "nil authorisation")
}

func TestCreateConfessionNoNonce(t *testing.T) {
	l, _ := setup(t)
	defer teardown(t)

	l.deriver = address.New(l.deriver.Program(), func([]byte) bool { return true })

	author := authorise(t, newSigner(t))
	_, err := l.CreateConfession(author, "ipfs://abc", address.Address{})
	assert.Equal(t, fault.InsufficientAllocationSpace, err, "no off curve address")
}

func TestCreateConfessionPublishFailure(t *testing.T) {
	l, r := setup(t)
	defer teardown(t)

	r.err = errors.New("broker down")

	author := authorise(t, newSigner(t))
	target, _, _ := l.Deriver().Confession(author.Key())

	_, err := l.CreateConfession(author, "ipfs://abc", target)
	assert.Nil(t, err, "event failures do not fail the operation")
	assert.True(t, storage.Pool.Confessions.Has(target[:]), "stored")
}

func TestCreateConfessionCommitFailure(t *testing.T) {
	l, r := setup(t)
	defer teardown(t)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	author := authorise(t, newSigner(t))
	target, _, _ := l.Deriver().Confession(author.Key())

	commitError := errors.New("disk full")

	trx := mocks.NewMockTransaction(ctl)
	gomock.InOrder(
		trx.EXPECT().Has(storage.Pool.Confessions, target[:]).Return(false).Times(1),
		trx.EXPECT().Put(storage.Pool.Confessions, target[:], gomock.Any()).Times(1),
		trx.EXPECT().Commit().Return(commitError).Times(1),
		trx.EXPECT().Abort().Times(1),
	)
	l.newTransaction = func() (storage.Transaction, error) {
		return trx, nil
	}

	_, err := l.CreateConfession(author, "ipfs://abc", target)
	assert.Equal(t, commitError, err, "commit error")
	assert.False(t, storage.Pool.Confessions.Has(target[:]), "nothing stored")
	assert.Empty(t, r.topics(), "no events")
}

func TestCreateConfessionsNeverCollide(t *testing.T) {
	l, _ := setup(t)
	defer teardown(t)

	seen := make(map[address.Address]struct{})
	for i := 0; i < 50; i += 1 {
		author := authorise(t, newSigner(t))
		target, _, _ := l.Deriver().Confession(author.Key())

		_, err := l.CreateConfession(author, "ipfs://abc", target)
		assert.Nil(t, err, "%d: create", i)

		_, ok := seen[target]
		assert.False(t, ok, "%d: duplicate address", i)
		seen[target] = struct{}{}
	}

	n, err := storage.Pool.Confessions.NewFetchCursor().Count()
	assert.Nil(t, err, "count")
	assert.Equal(t, uint64(50), n, "stored confessions")
}
