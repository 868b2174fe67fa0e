// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/whisperd/account"
	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/util"
)

// Pack - Varint64(tag) followed by fields in order as struct above with
// signature last
func (c *CreateConfession) Pack() (Packed, error) {
	return pack(c.Message(), c.Author, c.Signature)
}

// Pack - Varint64(tag) followed by fields in order as struct above with
// signature last
func (l *LikeConfession) Pack() (Packed, error) {
	return pack(l.Message(), l.User, l.Signature)
}

// Pack - Varint64(tag) followed by fields in order as struct above with
// signature last
func (c *CommentConfession) Pack() (Packed, error) {
	return pack(c.Message(), c.Commenter, c.Signature)
}

// NOTE: returns the "unsigned" message on signature failure, for debugging/testing
func pack(message []byte, signer *account.Account, signature account.Signature) (Packed, error) {
	if nil == signer || nil == signer.AccountInterface {
		return nil, fault.MissingParameters
	}
	if len(signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}
	if 0 == len(signature) {
		return message, fault.MissingSignature
	}

	err := signer.CheckSignature(message, signature)
	if nil != err {
		return message, err
	}

	// Signature Last
	return appendBytes(message, signature), nil
}

// append a single field to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	buffer = util.AppendVarint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// append an address to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, acc *account.Account) Packed {
	if nil == acc || nil == acc.AccountInterface {
		return appendBytes(buffer, nil)
	}
	return appendBytes(buffer, acc.Bytes())
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	buffer = util.AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return util.AppendVarint64(buffer, value)
}
