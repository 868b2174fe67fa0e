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

// CommentConfession - store the signer's comment and count it
//
// the comment and the updated confession are written in one commit,
// a failure leaves both untouched
func (l *Ledger) CommentConfession(auth *account.Authorisation, contentURI string, parent address.Address, target address.Address) (*record.Comment, error) {
	if !auth.Valid() {
		return nil, fault.MissingSignature
	}
	commenter := auth.Key()

	expected, nonce, err := l.deriver.Comment(parent, commenter)
	if nil != err {
		return nil, allocationError(err)
	}
	if expected != target {
		return nil, fault.AddressMismatch
	}

	var comment *record.Comment
	var confession *record.Confession
	err = l.transact(func(trx storage.Transaction) error {
		c, err := l.readConfession(trx, parent)
		if nil != err {
			return err
		}

		if trx.Has(l.pools.Comments, target[:]) {
			return fault.AddressAlreadyOccupied
		}

		if err := record.ValidateContentURI(contentURI); nil != err {
			return err
		}

		m := &record.Comment{
			Confession: parent,
			Commenter:  commenter,
			ContentURI: contentURI,
			Timestamp:  l.clock().Unix(),
			Nonce:      nonce,
		}
		packedComment, err := pack(m)
		if nil != err {
			return err
		}

		if err := c.AddComment(); nil != err {
			return err
		}
		packedConfession, err := pack(c)
		if nil != err {
			return err
		}

		trx.Put(l.pools.Comments, target[:], packedComment)
		trx.Put(l.pools.Confessions, parent[:], packedConfession)
		comment = m
		confession = c
		return nil
	}, parent, target)
	if nil != err {
		return nil, err
	}

	l.log.Infof("comment added to confession: %s", parent)
	l.publish(events.TopicCommentAdded, &events.CommentAdded{
		Confession:   parent,
		Comment:      target,
		Commenter:    commenter,
		CommentCount: confession.CommentCount,
	})

	return comment, nil
}
