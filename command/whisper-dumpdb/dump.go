// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"

	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/record"
	"github.com/bitmark-inc/whisperd/storage"
)

// kinds of dumped line
const (
	kindConfession = "confession"
	kindComment    = "comment"
)

// one JSON line of output
//
// verified reports whether the address matches the record's seeds
type line struct {
	Kind     string          `json:"kind"`
	Address  address.Address `json:"address"`
	Verified bool            `json:"verified"`
	Record   record.Record   `json:"record,omitempty"`
	Error    string          `json:"error,omitempty"`
}

type totals struct {
	Confessions uint64 `json:"confessions"`
	Comments    uint64 `json:"comments"`
	Bad         uint64 `json:"bad"`
}

// write every stored record as one JSON object per line
func dump(w io.Writer, confessions *storage.PoolHandle, comments *storage.PoolHandle, deriver *address.Deriver) (totals, error) {
	encoder := json.NewEncoder(w)
	t := totals{}

	err := confessions.NewFetchCursor().Map(func(key []byte, value []byte) error {
		l := line{Kind: kindConfession}
		a, err := address.FromBytes(key)
		if nil != err {
			return err
		}
		l.Address = a

		c, err := record.ConfessionFromBytes(value)
		if nil != err {
			l.Error = err.Error()
			t.Bad += 1
		} else {
			l.Record = c
			l.Verified = deriver.VerifyConfession(a, c.Nonce, c.Author)
			t.Confessions += 1
		}
		return encoder.Encode(l)
	})
	if nil != err {
		return t, err
	}

	err = comments.NewFetchCursor().Map(func(key []byte, value []byte) error {
		l := line{Kind: kindComment}
		a, err := address.FromBytes(key)
		if nil != err {
			return err
		}
		l.Address = a

		c, err := record.CommentFromBytes(value)
		if nil != err {
			l.Error = err.Error()
			t.Bad += 1
		} else {
			l.Record = c
			l.Verified = deriver.VerifyComment(a, c.Nonce, c.Confession, c.Commenter)
			t.Comments += 1
		}
		return encoder.Encode(l)
	})
	return t, err
}
