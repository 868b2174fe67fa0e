// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/bitmark-inc/whisperd/fault"
)

// Authorisation - proof that the holder of an account signed one message
//
// the only way to obtain one is through Authorise, so a handler given a
// non-nil value knows the signature has already been checked
type Authorisation struct {
	account *Account
	message []byte
}

// Authorise - verify a signature and return the capability for its signer
func Authorise(account *Account, message []byte, signature Signature) (*Authorisation, error) {
	if nil == account || nil == account.AccountInterface {
		return nil, fault.MissingSignature
	}
	if 0 == len(signature) {
		return nil, fault.MissingSignature
	}
	if err := account.CheckSignature(message, signature); nil != err {
		return nil, err
	}
	m := make([]byte, len(message))
	copy(m, message)
	return &Authorisation{
		account: account,
		message: m,
	}, nil
}

// Valid - true only for a token produced by Authorise
func (auth *Authorisation) Valid() bool {
	return nil != auth && nil != auth.account
}

// Account - the signer
func (auth *Authorisation) Account() *Account {
	if nil == auth {
		return nil
	}
	return auth.account
}

// Key - raw public key of the signer
func (auth *Authorisation) Key() PublicKey {
	return auth.Account().Key()
}

// Message - the exact bytes that were signed
func (auth *Authorisation) Message() []byte {
	if nil == auth {
		return nil
	}
	return auth.message
}
