// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the confession state machine
//
// three operations change the ledger:
//
//	create   - one confession per author at its derived address
//	like     - count one like on any confession, by any signer
//	comment  - one comment per (confession, commenter), counted on the confession
//
// every operation locks the addresses it writes, runs inside its own
// storage transaction and either commits every write or none
package ledger
