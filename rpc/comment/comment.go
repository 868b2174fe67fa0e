// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package comment

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/ledger"
	"github.com/bitmark-inc/whisperd/record"
)

// Comment - type for the RPC
type Comment struct {
	Log    *logger.L
	Ledger ledger.Handle
}

// New - create the comment service
func New(log *logger.L, handle ledger.Handle) *Comment {
	return &Comment{
		Log:    log,
		Ledger: handle,
	}
}

// GetArguments - address of a stored comment
type GetArguments struct {
	Address address.Address `json:"address"`
}

// GetReply - the comment with its parent confession
type GetReply struct {
	Address    address.Address    `json:"address"`
	Comment    *record.Comment    `json:"comment"`
	Confession *record.Confession `json:"confession,omitempty"`
}

// Get - read one comment
//
// the parent confession is included when it can be read
func (c *Comment) Get(arguments *GetArguments, reply *GetReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	comment, err := c.Ledger.Comment(arguments.Address)
	if nil != err {
		return err
	}

	reply.Address = arguments.Address
	reply.Comment = comment

	confession, err := c.Ledger.Confession(comment.Confession)
	if nil != err {
		c.Log.Warnf("comment: %s  parent: %s  error: %s", arguments.Address, comment.Confession, err)
		return nil
	}
	reply.Confession = confession

	return nil
}
