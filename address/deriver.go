// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"crypto/sha256"

	"filippo.io/edwards25519"

	"github.com/bitmark-inc/whisperd/fault"
)

// limits on derivation inputs
const (
	MaxSeedLength = 32
	MaxSeeds      = 16 // including the tag and the nonce
)

// DefaultProgram - identity mixed into every derivation
const DefaultProgram = "DHTV8Z1MNm7C5vNX5mUrR1QdNzipbytaHFimTZbycH9R"

const derivationMarker = "ProgramDerivedAddress"

// CurvePredicate - reports whether 32 bytes could be a real public key
type CurvePredicate func([]byte) bool

// Deriver - computes derived addresses for one program identity
type Deriver struct {
	program Address
	onCurve CurvePredicate
}

// New - deriver for the given program and curve test
//
// a nil predicate selects the ed25519 point decompression test
func New(program Address, onCurve CurvePredicate) *Deriver {
	if nil == onCurve {
		onCurve = IsOnCurve
	}
	return &Deriver{
		program: program,
		onCurve: onCurve,
	}
}

// NewDefault - deriver for the default program identity
func NewDefault() *Deriver {
	program, err := FromBase58(DefaultProgram)
	if nil != err {
		panic("address: invalid default program: " + err.Error())
	}
	return New(program, nil)
}

// Program - the identity this deriver is bound to
func (d *Deriver) Program() Address {
	return d.program
}

// IsOnCurve - true if the bytes decompress to an ed25519 point
func IsOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return nil == err
}

// Derive - find the address and nonce for a tag and its seeds
func (d *Deriver) Derive(tag string, seeds ...[]byte) (Address, uint8, error) {
	if err := checkSeeds(tag, seeds); nil != err {
		return Address{}, 0, err
	}

	for n := 255; n >= 0; n -= 1 {
		nonce := uint8(n)
		candidate := d.candidate(tag, seeds, nonce)
		if !d.onCurve(candidate[:]) {
			return candidate, nonce, nil
		}
	}
	return Address{}, 0, fault.NoValidNonce
}

// Verify - check an address against a stored nonce
func (d *Deriver) Verify(address Address, nonce uint8, tag string, seeds ...[]byte) bool {
	if nil != checkSeeds(tag, seeds) {
		return false
	}
	candidate := d.candidate(tag, seeds, nonce)
	if d.onCurve(candidate[:]) {
		return false
	}
	return candidate == address
}

func (d *Deriver) candidate(tag string, seeds [][]byte, nonce uint8) Address {
	h := sha256.New()
	h.Write([]byte(tag))
	for _, s := range seeds {
		h.Write(s)
	}
	h.Write([]byte{nonce})
	h.Write(d.program[:])
	h.Write([]byte(derivationMarker))

	var a Address
	copy(a[:], h.Sum(nil))
	return a
}

func checkSeeds(tag string, seeds [][]byte) error {
	if len(seeds)+2 > MaxSeeds {
		return fault.InvalidSeed
	}
	if len(tag) > MaxSeedLength {
		return fault.InvalidSeed
	}
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return fault.InvalidSeed
		}
	}
	return nil
}
