// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package events - notifications of committed ledger changes
package events

import (
	"context"

	"github.com/bitmark-inc/whisperd/account"
	"github.com/bitmark-inc/whisperd/address"
)

// Event topic constants
const (
	TopicConfessionCreated = "whisper.confession.created"
	TopicConfessionLiked   = "whisper.confession.liked"
	TopicCommentAdded      = "whisper.comment.added"

	// TopicAll - wildcard for subscribers
	TopicAll = "whisper.>"
)

// ConfessionCreated - a new confession was stored
type ConfessionCreated struct {
	Confession address.Address   `json:"confession"`
	Author     account.PublicKey `json:"author"`
	ContentURI string            `json:"contentUri"`
	Timestamp  int64             `json:"timestamp"`
}

// ConfessionLiked - a like was counted
type ConfessionLiked struct {
	Confession address.Address   `json:"confession"`
	User       account.PublicKey `json:"user"`
	LikeCount  uint64            `json:"likeCount"`
}

// CommentAdded - a comment was stored and counted
type CommentAdded struct {
	Confession   address.Address   `json:"confession"`
	Comment      address.Address   `json:"comment"`
	Commenter    account.PublicKey `json:"commenter"`
	CommentCount uint64            `json:"commentCount"`
}

// Publisher - the interface for emitting events
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
