// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package confession

import (
	"encoding/hex"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/account"
	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/instruction"
	"github.com/bitmark-inc/whisperd/ledger"
	"github.com/bitmark-inc/whisperd/record"
)

// Confession - type for the RPC
type Confession struct {
	Log       *logger.L
	Ledger    ledger.Handle
	IsTesting bool
}

// New - create the confession service
func New(log *logger.L, handle ledger.Handle, isTesting bool) *Confession {
	return &Confession{
		Log:       log,
		Ledger:    handle,
		IsTesting: isTesting,
	}
}

// Reply - a confession and where it is stored
type Reply struct {
	Address    address.Address    `json:"address"`
	Confession *record.Confession `json:"confession"`
}

// CommentReply - a stored comment
type CommentReply struct {
	Address address.Address `json:"address"`
	Comment *record.Comment `json:"comment"`
}

// Create - publish the signer's confession
func (c *Confession) Create(arguments *instruction.CreateConfession, reply *Reply) error {
	if nil == arguments || nil == arguments.Author {
		return fault.MissingParameters
	}
	if err := c.checkNetwork(arguments.Author); nil != err {
		return err
	}

	c.Log.Infof("Confession.Create: author: %s  uri: %q", arguments.Author, arguments.ContentURI)

	result, err := c.Ledger.Process(arguments)
	if nil != err {
		c.Log.Warnf("Confession.Create error: %s", err)
		return err
	}
	confession := result.(*record.Confession)

	a, _, err := c.Ledger.Deriver().Confession(confession.Author)
	if nil != err {
		return err
	}

	reply.Address = a
	reply.Confession = confession
	return nil
}

// Like - count one like
func (c *Confession) Like(arguments *instruction.LikeConfession, reply *Reply) error {
	if nil == arguments || nil == arguments.User {
		return fault.MissingParameters
	}
	if err := c.checkNetwork(arguments.User); nil != err {
		return err
	}

	c.Log.Infof("Confession.Like: confession: %s  user: %s", arguments.Confession, arguments.User)

	result, err := c.Ledger.Process(arguments)
	if nil != err {
		c.Log.Warnf("Confession.Like error: %s", err)
		return err
	}

	reply.Address = arguments.Confession
	reply.Confession = result.(*record.Confession)
	return nil
}

// Comment - the signer's comment on a confession
func (c *Confession) Comment(arguments *instruction.CommentConfession, reply *CommentReply) error {
	if nil == arguments || nil == arguments.Commenter {
		return fault.MissingParameters
	}
	if err := c.checkNetwork(arguments.Commenter); nil != err {
		return err
	}

	c.Log.Infof("Confession.Comment: confession: %s  commenter: %s", arguments.Confession, arguments.Commenter)

	result, err := c.Ledger.Process(arguments)
	if nil != err {
		c.Log.Warnf("Confession.Comment error: %s", err)
		return err
	}
	comment := result.(*record.Comment)

	a, _, err := c.Ledger.Deriver().Comment(comment.Confession, comment.Commenter)
	if nil != err {
		return err
	}

	reply.Address = a
	reply.Comment = comment
	return nil
}

// SubmitArguments - a signed instruction packed and hex encoded
type SubmitArguments struct {
	Packed string `json:"packed"`
}

// SubmitReply - the record written by a submitted instruction
type SubmitReply struct {
	Address    address.Address    `json:"address"`
	Confession *record.Confession `json:"confession,omitempty"`
	Comment    *record.Comment    `json:"comment,omitempty"`
}

// Submit - apply an instruction signed and packed offline
func (c *Confession) Submit(arguments *SubmitArguments, reply *SubmitReply) error {
	if nil == arguments || "" == arguments.Packed {
		return fault.MissingParameters
	}

	packed, err := hex.DecodeString(arguments.Packed)
	if nil != err {
		return fault.NotInstructionPack
	}

	i, n, err := instruction.Packed(packed).Unpack(c.IsTesting)
	if nil != err {
		return err
	}
	if n != len(packed) {
		return fault.NotInstructionPack
	}

	c.Log.Infof("Confession.Submit: signer: %s  bytes: %d", i.Signer(), n)

	result, err := c.Ledger.Process(i)
	if nil != err {
		c.Log.Warnf("Confession.Submit error: %s", err)
		return err
	}

	switch tx := i.(type) {
	case *instruction.CreateConfession:
		confession := result.(*record.Confession)
		a, _, err := c.Ledger.Deriver().Confession(confession.Author)
		if nil != err {
			return err
		}
		reply.Address = a
		reply.Confession = confession

	case *instruction.LikeConfession:
		reply.Address = tx.Confession
		reply.Confession = result.(*record.Confession)

	case *instruction.CommentConfession:
		comment := result.(*record.Comment)
		a, _, err := c.Ledger.Deriver().Comment(comment.Confession, comment.Commenter)
		if nil != err {
			return err
		}
		reply.Address = a
		reply.Comment = comment

	default:
		return fault.UnknownInstruction
	}
	return nil
}

// GetArguments - address of a stored record
type GetArguments struct {
	Address address.Address `json:"address"`
}

// Get - read one confession
func (c *Confession) Get(arguments *GetArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	confession, err := c.Ledger.Confession(arguments.Address)
	if nil != err {
		return err
	}

	reply.Address = arguments.Address
	reply.Confession = confession
	return nil
}

// DeriveArguments - keys to derive addresses for
//
// the comment address is only derived when a commenter is given
type DeriveArguments struct {
	Author    *account.Account `json:"author"`
	Commenter *account.Account `json:"commenter,omitempty"`
}

// DeriveReply - derived addresses and their nonces
type DeriveReply struct {
	Confession      address.Address  `json:"confession"`
	ConfessionNonce uint8            `json:"confessionNonce"`
	Comment         *address.Address `json:"comment,omitempty"`
	CommentNonce    uint8            `json:"commentNonce,omitempty"`
}

// Derive - compute the addresses used by create and comment
func (c *Confession) Derive(arguments *DeriveArguments, reply *DeriveReply) error {
	if nil == arguments || nil == arguments.Author {
		return fault.MissingParameters
	}
	if err := c.checkNetwork(arguments.Author); nil != err {
		return err
	}
	if nil != arguments.Commenter {
		if err := c.checkNetwork(arguments.Commenter); nil != err {
			return err
		}
	}

	deriver := c.Ledger.Deriver()

	a, nonce, err := deriver.Confession(arguments.Author.Key())
	if nil != err {
		return err
	}
	reply.Confession = a
	reply.ConfessionNonce = nonce

	if nil == arguments.Commenter {
		return nil
	}

	m, nonce, err := deriver.Comment(a, arguments.Commenter.Key())
	if nil != err {
		return err
	}
	reply.Comment = &m
	reply.CommentNonce = nonce
	return nil
}

func (c *Confession) checkNetwork(signer *account.Account) error {
	if nil == signer.AccountInterface {
		return fault.MissingParameters
	}
	if signer.IsTesting() != c.IsTesting {
		return fault.WrongNetworkForPublicKey
	}
	return nil
}
