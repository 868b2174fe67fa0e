// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/whisperd/account"
)

type generateReply struct {
	PrivateKey string           `json:"privateKey"`
	Account    *account.Account `json:"account"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := account.NewPrivateKey(m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "testnet: %t\n", m.testnet)
	}

	printJson(m.w, generateReply{
		PrivateKey: privateKey.String(),
		Account:    privateKey.Account(),
	})
	return nil
}
