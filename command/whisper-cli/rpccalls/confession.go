// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/hex"
	"time"

	"github.com/bitmark-inc/whisperd/account"
	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/instruction"
	"github.com/bitmark-inc/whisperd/rpc/confession"
)

// CreateData - a new confession
type CreateData struct {
	ContentURI string
	Author     *account.PrivateKey
}

// LikeData - one like on a confession
type LikeData struct {
	Confession address.Address
	User       *account.PrivateKey
}

// CommentData - a comment on a confession
type CommentData struct {
	Confession address.Address
	ContentURI string
	Commenter  *account.PrivateKey
}

// SignCreate - a create confession instruction signed by the author
func SignCreate(data *CreateData, testnet bool) (*instruction.CreateConfession, error) {
	if err := checkKey(data.Author, testnet); nil != err {
		return nil, err
	}
	i := &instruction.CreateConfession{
		ContentURI: data.ContentURI,
		Author:     data.Author.Account(),
	}
	i.Sign(data.Author)
	return i, nil
}

// SignLike - a like instruction signed by the user
//
// every like is signed with a fresh nonce so repeats are distinct
func SignLike(data *LikeData, testnet bool) (*instruction.LikeConfession, error) {
	if err := checkKey(data.User, testnet); nil != err {
		return nil, err
	}
	i := &instruction.LikeConfession{
		Confession: data.Confession,
		User:       data.User.Account(),
		Nonce:      uint64(time.Now().UnixNano()),
	}
	i.Sign(data.User)
	return i, nil
}

// SignComment - a comment instruction signed by the commenter
func SignComment(data *CommentData, testnet bool) (*instruction.CommentConfession, error) {
	if err := checkKey(data.Commenter, testnet); nil != err {
		return nil, err
	}
	i := &instruction.CommentConfession{
		Confession: data.Confession,
		ContentURI: data.ContentURI,
		Commenter:  data.Commenter.Account(),
	}
	i.Sign(data.Commenter)
	return i, nil
}

// PackedHex - the wire form accepted by Submit
func PackedHex(i instruction.Instruction) (string, error) {
	packed, err := i.Pack()
	if nil != err {
		return "", err
	}
	return hex.EncodeToString(packed), nil
}

// Create - sign and send a create confession request
func (client *Client) Create(data *CreateData) (*confession.Reply, error) {
	arguments, err := SignCreate(data, client.testnet)
	if nil != err {
		return nil, err
	}

	client.printJson("Create Request", arguments)

	var reply confession.Reply
	if err := client.client.Call("Confession.Create", arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Create Reply", reply)
	return &reply, nil
}

// Like - sign and send a like request
func (client *Client) Like(data *LikeData) (*confession.Reply, error) {
	arguments, err := SignLike(data, client.testnet)
	if nil != err {
		return nil, err
	}

	client.printJson("Like Request", arguments)

	var reply confession.Reply
	if err := client.client.Call("Confession.Like", arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Like Reply", reply)
	return &reply, nil
}

// Comment - sign and send a comment request
func (client *Client) Comment(data *CommentData) (*confession.CommentReply, error) {
	arguments, err := SignComment(data, client.testnet)
	if nil != err {
		return nil, err
	}

	client.printJson("Comment Request", arguments)

	var reply confession.CommentReply
	if err := client.client.Call("Confession.Comment", arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Comment Reply", reply)
	return &reply, nil
}

// Submit - send an instruction that was signed and packed earlier
func (client *Client) Submit(packedHex string) (*confession.SubmitReply, error) {
	arguments := confession.SubmitArguments{
		Packed: packedHex,
	}

	client.printJson("Submit Request", arguments)

	var reply confession.SubmitReply
	if err := client.client.Call("Confession.Submit", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Submit Reply", reply)
	return &reply, nil
}

// GetConfession - fetch one confession
func (client *Client) GetConfession(a address.Address) (*confession.Reply, error) {
	arguments := confession.GetArguments{
		Address: a,
	}

	var reply confession.Reply
	if err := client.client.Call("Confession.Get", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Confession Reply", reply)
	return &reply, nil
}

// Derive - ask the server for the addresses of an author's
// confession and optionally of a commenter's comment on it
func (client *Client) Derive(author *account.Account, commenter *account.Account) (*confession.DeriveReply, error) {
	arguments := confession.DeriveArguments{
		Author:    author,
		Commenter: commenter,
	}

	var reply confession.DeriveReply
	if err := client.client.Call("Confession.Derive", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Derive Reply", reply)
	return &reply, nil
}

func checkKey(key *account.PrivateKey, testnet bool) error {
	if nil == key || nil == key.PrivateKeyInterface {
		return fault.MissingPrivateKey
	}
	if key.IsTesting() != testnet {
		return fault.WrongNetworkForPrivateKey
	}
	return nil
}
