// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/rpc/comment"
)

// GetComment - fetch one comment and its confession
func (client *Client) GetComment(a address.Address) (*comment.GetReply, error) {
	arguments := comment.GetArguments{
		Address: a,
	}

	var reply comment.GetReply
	if err := client.client.Call("Comment.Get", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Comment Reply", reply)
	return &reply, nil
}
