// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/whisperd/account"
	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/util"
)

// Unpack - turn a byte slice into an instruction
//
// the signature is checked, so a successful result can be authorised
//
// must cast result to correct type
//
// e.g.
//
//	switch tx := result.(type) {
//	case *instruction.CreateConfession:
func (record Packed) Unpack(testnet bool) (i Instruction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			i = nil
			n = 0
			e = fault.NotInstructionPack
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.NotInstructionPack
	}

unpack_switch:
	switch TagType(recordType) {

	case CreateConfessionTag:

		// content URI
		uri, uriLength := unpackString(record[n:])
		if 0 == uriLength {
			break unpack_switch
		}
		n += uriLength

		// author
		author, authorLength, err := unpackAccount(record[n:], testnet)
		if nil != err {
			return nil, 0, err
		}
		n += authorLength

		// signature is remainder of record
		signature, signatureLength := unpackSignature(record[n:])
		if 0 == signatureLength {
			break unpack_switch
		}

		r := &CreateConfession{
			ContentURI: uri,
			Author:     author,
			Signature:  signature,
		}
		err = author.CheckSignature(record[:n], signature)
		if nil != err {
			return nil, 0, err
		}
		return r, n + signatureLength, nil

	case LikeConfessionTag:

		// confession
		confession, confessionLength := unpackAddress(record[n:])
		if 0 == confessionLength {
			break unpack_switch
		}
		n += confessionLength

		// user
		user, userLength, err := unpackAccount(record[n:], testnet)
		if nil != err {
			return nil, 0, err
		}
		n += userLength

		// nonce
		nonce, nonceLength := util.FromVarint64(record[n:])
		if 0 == nonceLength {
			break unpack_switch
		}
		n += nonceLength

		// signature is remainder of record
		signature, signatureLength := unpackSignature(record[n:])
		if 0 == signatureLength {
			break unpack_switch
		}

		r := &LikeConfession{
			Confession: confession,
			User:       user,
			Nonce:      nonce,
			Signature:  signature,
		}
		err = user.CheckSignature(record[:n], signature)
		if nil != err {
			return nil, 0, err
		}
		return r, n + signatureLength, nil

	case CommentConfessionTag:

		// confession
		confession, confessionLength := unpackAddress(record[n:])
		if 0 == confessionLength {
			break unpack_switch
		}
		n += confessionLength

		// content URI
		uri, uriLength := unpackString(record[n:])
		if 0 == uriLength {
			break unpack_switch
		}
		n += uriLength

		// commenter
		commenter, commenterLength, err := unpackAccount(record[n:], testnet)
		if nil != err {
			return nil, 0, err
		}
		n += commenterLength

		// signature is remainder of record
		signature, signatureLength := unpackSignature(record[n:])
		if 0 == signatureLength {
			break unpack_switch
		}

		r := &CommentConfession{
			Confession: confession,
			ContentURI: uri,
			Commenter:  commenter,
			Signature:  signature,
		}
		err = commenter.CheckSignature(record[:n], signature)
		if nil != err {
			return nil, 0, err
		}
		return r, n + signatureLength, nil

	default: // also NullTag
		return nil, 0, fault.NotInstructionPack
	}
	return nil, 0, fault.NotInstructionPack
}

// returns the string and the total bytes consumed, zero on error
func unpackString(buffer []byte) (string, int) {
	length, offset := util.ClippedVarint64(buffer, 0, maxContentURIBytes)
	if 0 == offset || offset+length > len(buffer) {
		return "", 0
	}
	return string(buffer[offset : offset+length]), offset + length
}

func unpackAddress(buffer []byte) (address.Address, int) {
	length, offset := util.ClippedVarint64(buffer, 1, 8192)
	if 0 == offset || address.Length != length || offset+length > len(buffer) {
		return address.Address{}, 0
	}
	a, err := address.FromBytes(buffer[offset : offset+length])
	if nil != err {
		return address.Address{}, 0
	}
	return a, offset + length
}

func unpackAccount(buffer []byte, testnet bool) (*account.Account, int, error) {
	length, offset := util.ClippedVarint64(buffer, 1, maxAccountLength)
	if 0 == offset || offset+length > len(buffer) {
		return nil, 0, fault.NotInstructionPack
	}
	acc, err := account.AccountFromBytes(buffer[offset : offset+length])
	if nil != err {
		return nil, 0, err
	}
	if acc.IsTesting() != testnet {
		return nil, 0, fault.WrongNetworkForPublicKey
	}
	return acc, offset + length, nil
}

func unpackSignature(buffer []byte) (account.Signature, int) {
	length, offset := util.ClippedVarint64(buffer, 1, maxSignatureLength)
	if 0 == offset || offset+length > len(buffer) {
		return nil, 0
	}
	signature := make(account.Signature, length)
	copy(signature, buffer[offset:offset+length])
	return signature, offset + length
}
