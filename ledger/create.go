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

// CreateConfession - store the signer's confession at target
//
// target must be the address derived from the signer's key; a second
// confession by the same author always fails
func (l *Ledger) CreateConfession(auth *account.Authorisation, contentURI string, target address.Address) (*record.Confession, error) {
	if !auth.Valid() {
		return nil, fault.MissingSignature
	}
	author := auth.Key()

	expected, nonce, err := l.deriver.Confession(author)
	if nil != err {
		return nil, allocationError(err)
	}
	if expected != target {
		return nil, fault.AddressMismatch
	}

	var confession *record.Confession
	err = l.transact(func(trx storage.Transaction) error {
		if trx.Has(l.pools.Confessions, target[:]) {
			return fault.AddressAlreadyOccupied
		}

		if err := record.ValidateContentURI(contentURI); nil != err {
			return err
		}

		c := &record.Confession{
			Author:       author,
			ContentURI:   contentURI,
			LikeCount:    0,
			CommentCount: 0,
			Timestamp:    l.clock().Unix(),
			Nonce:        nonce,
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

	l.log.Infof("confession created: %s", target)
	l.publish(events.TopicConfessionCreated, &events.ConfessionCreated{
		Confession: target,
		Author:     author,
		ContentURI: confession.ContentURI,
		Timestamp:  confession.Timestamp,
	})

	return confession, nil
}
