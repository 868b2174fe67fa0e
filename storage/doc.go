// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte derived record address
// 4. *others*     = byte values of various length
//
// Confessions:
//
//	C ++ address               - one confession per author
//	                             data: packed confession (269 bytes)
//
// Comments:
//
//	M ++ address               - one comment per (confession, commenter)
//	                             data: packed comment (285 bytes)
//
// Testing:
//
//	Z ++ key                   - testing data
//
// all writes go through a Transaction, which collects them in a
// leveldb batch and applies the batch in a single atomic write
package storage
