// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/bitmark-inc/whisperd/account"
)

// derivation tags
const (
	ConfessionTag = "confession"
	CommentTag    = "comment"
)

// Confession - the single confession address of an author
func (d *Deriver) Confession(author account.PublicKey) (Address, uint8, error) {
	return d.Derive(ConfessionTag, author[:])
}

// VerifyConfession - check a stored confession nonce
func (d *Deriver) VerifyConfession(a Address, nonce uint8, author account.PublicKey) bool {
	return d.Verify(a, nonce, ConfessionTag, author[:])
}

// Comment - the single comment address for a commenter on a confession
func (d *Deriver) Comment(confession Address, commenter account.PublicKey) (Address, uint8, error) {
	return d.Derive(CommentTag, confession[:], commenter[:])
}

// VerifyComment - check a stored comment nonce
func (d *Deriver) VerifyComment(a Address, nonce uint8, confession Address, commenter account.PublicKey) bool {
	return d.Verify(a, nonce, CommentTag, confession[:], commenter[:])
}
