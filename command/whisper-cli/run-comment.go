// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/whisperd/command/whisper-cli/rpccalls"
)

func runComment(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	confession, err := checkAddress(c.String("confession"))
	if nil != err {
		return err
	}

	uri := c.String("uri")
	if "" == uri {
		return ErrMissingURI
	}

	commenter, err := privateKey(m)
	if nil != err {
		return err
	}

	data := &rpccalls.CommentData{
		Confession: confession,
		ContentURI: uri,
		Commenter:  commenter,
	}

	if c.Bool("packed") {
		i, err := rpccalls.SignComment(data, m.testnet)
		if nil != err {
			return err
		}
		return printPacked(m.w, i)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Comment(data)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runCommentInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetComment(a)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
