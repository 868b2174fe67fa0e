// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/whisperd/account"
	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/events"
	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/record"
	"github.com/bitmark-inc/whisperd/storage"
)

// LikeConfession - count one like
//
// likes are not deduplicated: the same signer may like any number of times
func (l *Ledger) LikeConfession(auth *account.Authorisation, target address.Address) (*record.Confession, error) {
	if !auth.Valid() {
		return nil, fault.MissingSignature
	}

	var confession *record.Confession
	err := l.transact(func(trx storage.Transaction) error {
		c, err := l.readConfession(trx, target)
		if nil != err {
			return err
		}

		if err := c.AddLike(); nil != err {
			return err
		}

		packed, err := pack(c)
		if nil != err {
			return err
		}
		trx.Put(l.pools.Confessions, target[:], packed)
		confession = c
		return nil
	}, target)
	if nil != err {
		return nil, err
	}

	l.log.Infof("confession liked. total likes: %d", confession.LikeCount)
	l.publish(events.TopicConfessionLiked, &events.ConfessionLiked{
		Confession: target,
		User:       auth.Key(),
		LikeCount:  confession.LikeCount,
	})

	return confession, nil
}
