// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"github.com/bitmark-inc/whisperd/fault"
)

// maximum encoded signature accepted from text
const maxSignatureBytes = 128

// Signature - the type for a signature
//
// text form is lower case hex
type Signature []byte

// String - hex for %s
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - tagged hex for %#v
func (signature Signature) GoString() string {
	return "<signature:" + signature.String() + ">"
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(signature)))
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - convert hex text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) > maxSignatureBytes {
		return fault.SignatureTooLong
	}
	sig := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(sig, s)
	if nil != err {
		return err
	}
	*signature = sig[:n]
	return nil
}
