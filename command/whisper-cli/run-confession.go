// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runConfession(c *cli.Context) error {

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

	reply, err := client.GetConfession(a)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
