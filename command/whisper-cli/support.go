// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/whisperd/account"
	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/command/whisper-cli/rpccalls"
	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/instruction"
)

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.testnet, m.connect, m.verbose, m.e)
}

// the signing key from --key or WHISPER_PRIVATE_KEY
func privateKey(m *metadata) (*account.PrivateKey, error) {
	if "" == m.key {
		return nil, fault.MissingPrivateKey
	}
	key, err := account.PrivateKeyFromBase58(m.key)
	if nil != err {
		return nil, err
	}
	if key.IsTesting() != m.testnet {
		return nil, fault.WrongNetworkForPrivateKey
	}
	return key, nil
}

func checkAddress(s string) (address.Address, error) {
	if "" == s {
		return address.Address{}, ErrMissingAddress
	}
	return address.FromBase58(s)
}

func checkAccount(s string, testnet bool) (*account.Account, error) {
	a, err := account.AccountFromBase58(s)
	if nil != err {
		return nil, err
	}
	if a.IsTesting() != testnet {
		return nil, fault.WrongNetworkForPublicKey
	}
	return a, nil
}

type packedReply struct {
	Packed string `json:"packed"`
}

// print the hex wire form for a later submit
func printPacked(handle io.Writer, i instruction.Instruction) error {
	packed, err := rpccalls.PackedHex(i)
	if nil != err {
		return err
	}
	printJson(handle, packedReply{Packed: packed})
	return nil
}

func printJson(handle io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(handle, "error: %s\n", err)
		return
	}

	fmt.Fprintf(handle, "%s\n", b)
}
