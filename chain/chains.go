// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	Whisper = "whisper"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Whisper, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - accounts on every chain except the live one carry the test bit
func IsTesting(name string) bool {
	return Whisper != name
}
