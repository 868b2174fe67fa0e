// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring whisperd services
//
// standard golang RPC services can be used on the client side to
// access these services:
//
//	Confession.Create   Confession.Like   Confession.Comment
//	Confession.Get      Confession.Derive
//	Comment.Get
//	Node.Info
//
// the same calls are available as a POST to /whisperd/rpc on the
// HTTPS gateway
package rpc
