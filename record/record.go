// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the fixed layout ledger records
package record

import (
	"math"

	"github.com/bitmark-inc/whisperd/account"
	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/fault"
)

// size limits
const (
	MaxContentURILength = 200

	discriminatorLength = 8
	keyLength           = 32
	stringPrefixLength  = 4

	// ConfessionSpace - bytes allocated for every confession
	ConfessionSpace = discriminatorLength + keyLength + stringPrefixLength + MaxContentURILength + 8 + 8 + 8 + 1

	// CommentSpace - bytes allocated for every comment
	CommentSpace = discriminatorLength + keyLength + keyLength + stringPrefixLength + MaxContentURILength + 8 + 1
)

// Record - generic record interface
type Record interface {
	Pack() (Packed, error)
	Space() int
}

// Confession - one per author
type Confession struct {
	Author       account.PublicKey `json:"author"`
	ContentURI   string            `json:"contentUri"`
	LikeCount    uint64            `json:"likeCount"`
	CommentCount uint64            `json:"commentCount"`
	Timestamp    int64             `json:"timestamp"`
	Nonce        uint8             `json:"nonce"`
}

// Comment - one per (confession, commenter) pair
type Comment struct {
	Confession address.Address   `json:"confession"`
	Commenter  account.PublicKey `json:"commenter"`
	ContentURI string            `json:"contentUri"`
	Timestamp  int64             `json:"timestamp"`
	Nonce      uint8             `json:"nonce"`
}

// ValidateContentURI - check the length of a content reference
func ValidateContentURI(uri string) error {
	if len(uri) > MaxContentURILength {
		return fault.ContentUriTooLong
	}
	if 0 == len(uri) {
		return fault.EmptyContentUri
	}
	return nil
}

// AddLike - checked increment of the like counter
func (c *Confession) AddLike() error {
	if math.MaxUint64 == c.LikeCount {
		return fault.LikeCountOverflow
	}
	c.LikeCount += 1
	return nil
}

// AddComment - checked increment of the comment counter
func (c *Confession) AddComment() error {
	if math.MaxUint64 == c.CommentCount {
		return fault.CommentCountOverflow
	}
	c.CommentCount += 1
	return nil
}

// Space - allocation size
func (c *Confession) Space() int {
	return ConfessionSpace
}

// Space - allocation size
func (c *Comment) Space() int {
	return CommentSpace
}
