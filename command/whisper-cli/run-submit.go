// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"
)

func runSubmit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed := strings.TrimSpace(c.String("instruction"))
	if "" == packed {
		return ErrMissingInstruction
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Submit(packed)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
