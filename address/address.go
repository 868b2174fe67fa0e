// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/whisperd/fault"
)

// Length - number of bytes in an address
const Length = 32

// Address - a record location in the ledger
type Address [Length]byte

// FromBase58 - decode the text form of an address
func FromBase58(s string) (Address, error) {
	var a Address
	buffer, err := base58.Decode(s)
	if nil != err {
		return a, fault.CannotDecodeAddress
	}
	if Length != len(buffer) {
		return a, fault.CannotDecodeAddress
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBytes - copy a raw address out of a buffer
func FromBytes(buffer []byte) (Address, error) {
	var a Address
	if Length != len(buffer) {
		return a, fault.CannotDecodeAddress
	}
	copy(a[:], buffer)
	return a, nil
}

// Bytes - slice of the raw address
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero - true for the unset address
func (a Address) IsZero() bool {
	return Address{} == a
}

// String - base58 for the fmt package (%s)
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - for the fmt package (%#v)
func (a Address) GoString() string {
	return "<address:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - convert an address to its base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 text into an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
