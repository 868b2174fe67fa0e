// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/chain"
	"github.com/bitmark-inc/whisperd/counter"
	"github.com/bitmark-inc/whisperd/ledger"
	"github.com/bitmark-inc/whisperd/rpc/comment"
	"github.com/bitmark-inc/whisperd/rpc/confession"
	"github.com/bitmark-inc/whisperd/rpc/node"
)

// Services - every RPC service
type Services struct {
	Confession *confession.Confession
	Comment    *comment.Comment
	Node       *node.Node
}

// NewServices - create the services over one ledger
func NewServices(log *logger.L, version string, chainName string, handle ledger.Handle, pools ledger.Pools, rpcCount *counter.Counter) *Services {

	start := time.Now().UTC()
	isTesting := chain.IsTesting(chainName)

	return &Services{
		Confession: confession.New(log, handle, isTesting),
		Comment:    comment.New(log, handle),
		Node:       node.New(log, pools, start, version, chainName, handle.Deriver().Program(), rpcCount),
	}
}

// Server - an RPC server with every service registered
func (s *Services) Server() *rpc.Server {
	server := rpc.NewServer()

	_ = server.Register(s.Confession)
	_ = server.Register(s.Comment)
	_ = server.Register(s.Node)

	return server
}

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, chainName string, handle ledger.Handle, pools ledger.Pools, rpcCount *counter.Counter) *rpc.Server {
	return NewServices(log, version, chainName, handle, pools, rpcCount).Server()
}
