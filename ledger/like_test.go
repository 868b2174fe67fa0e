// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/whisperd/account"
	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/events"
	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/storage"
)

// create a confession for a new author
func newConfession(t *testing.T, l *Ledger) (*account.Authorisation, address.Address) {
	author := authorise(t, newSigner(t))
	target, _, err := l.Deriver().Confession(author.Key())
	if nil != err {
		t.Fatalf("derive error: %s", err)
	}
	_, err = l.CreateConfession(author, "ipfs://abc", target)
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	return author, target
}

// overwrite the counters of a stored confession
func setCounts(t *testing.T, l *Ledger, target address.Address, likes uint64, comments uint64) {
	c, err := l.Confession(target)
	if nil != err {
		t.Fatalf("read error: %s", err)
	}
	c.LikeCount = likes
	c.CommentCount = comments
	packed, err := c.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	trx.Put(storage.Pool.Confessions, target[:], packed)
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func TestLikeConfession(t *testing.T) {
	l, r := setup(t)
	defer teardown(t)

	_, target := newConfession(t, l)
	user := authorise(t, newSigner(t))

	for i := uint64(1); i <= 10; i += 1 {
		c, err := l.LikeConfession(user, target)
		assert.Nil(t, err, "%d: like", i)
		assert.Equal(t, i, c.LikeCount, "%d: returned count", i)
	}

	c, err := l.Confession(target)
	assert.Nil(t, err, "read back")
	assert.Equal(t, uint64(10), c.LikeCount, "likes from one user are all counted")
	assert.Equal(t, uint64(0), c.CommentCount, "comments untouched")

	topics := r.topics()
	assert.Equal(t, 11, len(topics), "event count")
	assert.Equal(t, events.TopicConfessionLiked, topics[10], "last event")
}

func TestLikeConfessionByAuthor(t *testing.T) {
	l, _ := setup(t)
	defer teardown(t)

	author, target := newConfession(t, l)

	c, err := l.LikeConfession(author, target)
	assert.Nil(t, err, "own confession")
	assert.Equal(t, uint64(1), c.LikeCount, "likes")
}

func TestLikeConfessionNotFound(t *testing.T) {
	l, _ := setup(t)
	defer teardown(t)

	user := authorise(t, newSigner(t))
	target, _, _ := l.Deriver().Confession(user.Key())

	_, err := l.LikeConfession(user, target)
	assert.Equal(t, fault.AddressNotFound, err, "no confession")
	assert.False(t, storage.Pool.Confessions.Has(target[:]), "nothing created")
}

func TestLikeConfessionOverflow(t *testing.T) {
	l, _ := setup(t)
	defer teardown(t)

	_, target := newConfession(t, l)
	setCounts(t, l, target, math.MaxUint64-1, 7)

	user := authorise(t, newSigner(t))

	c, err := l.LikeConfession(user, target)
	assert.Nil(t, err, "last like")
	assert.Equal(t, uint64(math.MaxUint64), c.LikeCount, "at maximum")

	_, err = l.LikeConfession(user, target)
	assert.Equal(t, fault.LikeCountOverflow, err, "overflow")

	c, err = l.Confession(target)
	assert.Nil(t, err, "read back")
	assert.Equal(t, uint64(math.MaxUint64), c.LikeCount, "unchanged")
	assert.Equal(t, uint64(7), c.CommentCount, "comments unchanged")
}

func TestLikeConfessionMissingSignature(t *testing.T) {
	l, _ := setup(t)
	defer teardown(t)

	_, target := newConfession(t, l)

	_, err := l.LikeConfession(&account.Authorisation{}, target)
	assert.Equal(t, fault.MissingSignature, err, "zero authorisation")

	c, _ := l.Confession(target)
	assert.Equal(t, uint64(0), c.LikeCount, "not counted")
}

func TestLikeConfessionConcurrent(t *testing.T) {
	l, _ := setup(t)
	defer teardown(t)

	_, target := newConfession(t, l)

	const users = 8
	const likes = 25

	var wg sync.WaitGroup
	for i := 0; i < users; i += 1 {
		user := authorise(t, newSigner(t))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < likes; j += 1 {
				_, err := l.LikeConfession(user, target)
				assert.Nil(t, err, "like")
			}
		}()
	}
	wg.Wait()

	c, err := l.Confession(target)
	assert.Nil(t, err, "read back")
	assert.Equal(t, uint64(users*likes), c.LikeCount, "no lost updates")
	assert.Equal(t, 0, l.locks.size(), "locks released")
}
