// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/whisperd/command/whisper-cli/rpccalls"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	uri := c.String("uri")
	if "" == uri {
		return ErrMissingURI
	}

	author, err := privateKey(m)
	if nil != err {
		return err
	}

	data := &rpccalls.CreateData{
		ContentURI: uri,
		Author:     author,
	}

	if c.Bool("packed") {
		i, err := rpccalls.SignCreate(data, m.testnet)
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

	reply, err := client.Create(data)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
