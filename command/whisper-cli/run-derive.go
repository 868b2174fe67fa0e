// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/whisperd/account"
	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/rpc/confession"
)

func runDerive(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var author *account.Account
	if s := c.String("author"); "" != s {
		a, err := checkAccount(s, m.testnet)
		if nil != err {
			return err
		}
		author = a
	} else {
		key, err := privateKey(m)
		if nil != err {
			return err
		}
		author = key.Account()
	}

	var commenter *account.Account
	if s := c.String("commenter"); "" != s {
		a, err := checkAccount(s, m.testnet)
		if nil != err {
			return err
		}
		commenter = a
	}

	if c.Bool("local") {
		reply, err := deriveLocal(address.NewDefault(), author, commenter)
		if nil != err {
			return err
		}
		printJson(m.w, reply)
		return nil
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Derive(author, commenter)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func deriveLocal(deriver *address.Deriver, author *account.Account, commenter *account.Account) (*confession.DeriveReply, error) {
	a, nonce, err := deriver.Confession(author.Key())
	if nil != err {
		return nil, err
	}

	reply := &confession.DeriveReply{
		Confession:      a,
		ConfessionNonce: nonce,
	}
	if nil == commenter {
		return reply, nil
	}

	m, nonce, err := deriver.Comment(a, commenter.Key())
	if nil != err {
		return nil, err
	}
	reply.Comment = &m
	reply.CommentNonce = nonce
	return reply, nil
}
