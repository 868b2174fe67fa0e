// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/counter"
	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/ledger"
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Start   time.Time
	Version string
	Chain   string
	Pools   ledger.Pools
	Program address.Address
	counter *counter.Counter
}

// New - create the node service
func New(log *logger.L, pools ledger.Pools, start time.Time, version string, chain string, program address.Address, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Start:   start,
		Version: version,
		Chain:   chain,
		Pools:   pools,
		Program: program,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain       string          `json:"chain"`
	RPCs        uint64          `json:"rpcs"`
	Confessions uint64          `json:"confessions"`
	Comments    uint64          `json:"comments"`
	Program     address.Address `json:"program"`
	Version     string          `json:"version"`
	Uptime      string          `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if nil == node.Pools.Confessions || nil == node.Pools.Comments {
		return fault.DatabaseIsNotSet
	}

	confessions, err := node.Pools.Confessions.NewFetchCursor().Count()
	if nil != err {
		node.Log.Errorf("count confessions error: %s", err)
		return err
	}
	comments, err := node.Pools.Comments.NewFetchCursor().Count()
	if nil != err {
		node.Log.Errorf("count comments error: %s", err)
		return err
	}

	reply.Chain = node.Chain
	reply.RPCs = node.counter.Uint64()
	reply.Confessions = confessions
	reply.Comments = comments
	reply.Program = node.Program
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
