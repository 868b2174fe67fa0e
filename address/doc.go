// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - derived record addresses
//
// every record lives at an address computed from a tag and the keys
// that own it, so the address doubles as the index:
//
//	confession:  ("confession", author key)
//	comment:     ("comment", confession address, commenter key)
//
// the derivation searches an 8 bit nonce from 255 downwards for the
// first candidate that is not a valid curve point, this means no
// private key can ever sign for a derived address
package address
