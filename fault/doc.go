// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - every error the ledger can return
//
// errors are constants of a small set of string types, one type per
// class, so callers compare by identity and select a response by
// class (IsErrNotFound, IsErrExists and so on)
package fault
