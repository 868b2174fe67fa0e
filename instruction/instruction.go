// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - signed requests to change the ledger
package instruction

import (
	"github.com/bitmark-inc/whisperd/account"
	"github.com/bitmark-inc/whisperd/address"
)

// TagType - type code for instructions
type TagType uint64

// enumerate the possible instruction record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	CreateConfessionTag  = TagType(iota) // new confession for the signer
	LikeConfessionTag    = TagType(iota) // count one like
	CommentConfessionTag = TagType(iota) // the signer's single comment on a confession

	// this item must be last
	InvalidTag = TagType(iota)
)

// limits
const (
	maxContentURIBytes = 8192 // transport limit, the ledger enforces the real one
	maxSignatureLength = 1024
	maxAccountLength   = 64
)

// Packed - packed records are just a byte slice
type Packed []byte

// Instruction - generic instruction interface
type Instruction interface {
	Message() []byte
	Signer() *account.Account
	Sign(*account.PrivateKey)
	Authorise() (*account.Authorisation, error)
	Pack() (Packed, error)
}

// CreateConfession - publish the signer's confession
type CreateConfession struct {
	ContentURI string            `json:"contentUri"`
	Author     *account.Account  `json:"author"`
	Signature  account.Signature `json:"signature"`
}

// LikeConfession - add one like
//
// the nonce only keeps otherwise identical likes from sharing a signature
type LikeConfession struct {
	Confession address.Address   `json:"confession"`
	User       *account.Account  `json:"user"`
	Nonce      uint64            `json:"nonce,string"`
	Signature  account.Signature `json:"signature"`
}

// CommentConfession - attach the signer's comment to a confession
type CommentConfession struct {
	Confession address.Address   `json:"confession"`
	ContentURI string            `json:"contentUri"`
	Commenter  *account.Account  `json:"commenter"`
	Signature  account.Signature `json:"signature"`
}

// Signer - account that must sign
func (c *CreateConfession) Signer() *account.Account { return c.Author }

// Signer - account that must sign
func (l *LikeConfession) Signer() *account.Account { return l.User }

// Signer - account that must sign
func (c *CommentConfession) Signer() *account.Account { return c.Commenter }

// Message - the bytes covered by the signature
func (c *CreateConfession) Message() []byte {
	message := appendUint64(nil, uint64(CreateConfessionTag))
	message = appendString(message, c.ContentURI)
	return appendAccount(message, c.Author)
}

// Message - the bytes covered by the signature
func (l *LikeConfession) Message() []byte {
	message := appendUint64(nil, uint64(LikeConfessionTag))
	message = appendBytes(message, l.Confession[:])
	message = appendAccount(message, l.User)
	return appendUint64(message, l.Nonce)
}

// Message - the bytes covered by the signature
func (c *CommentConfession) Message() []byte {
	message := appendUint64(nil, uint64(CommentConfessionTag))
	message = appendBytes(message, c.Confession[:])
	message = appendString(message, c.ContentURI)
	return appendAccount(message, c.Commenter)
}

// Sign - fill in the signature
func (c *CreateConfession) Sign(privateKey *account.PrivateKey) {
	c.Signature = privateKey.Sign(c.Message())
}

// Sign - fill in the signature
func (l *LikeConfession) Sign(privateKey *account.PrivateKey) {
	l.Signature = privateKey.Sign(l.Message())
}

// Sign - fill in the signature
func (c *CommentConfession) Sign(privateKey *account.PrivateKey) {
	c.Signature = privateKey.Sign(c.Message())
}

// Authorise - check the signature and return the signer's token
func (c *CreateConfession) Authorise() (*account.Authorisation, error) {
	return account.Authorise(c.Author, c.Message(), c.Signature)
}

// Authorise - check the signature and return the signer's token
func (l *LikeConfession) Authorise() (*account.Authorisation, error) {
	return account.Authorise(l.User, l.Message(), l.Signature)
}

// Authorise - check the signature and return the signer's token
func (c *CommentConfession) Authorise() (*account.Authorisation, error) {
	return account.Authorise(c.Commenter, c.Message(), c.Signature)
}
