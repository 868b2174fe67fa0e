// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/whisperd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidNetwork     = fault.InvalidError("invalid network")
	ErrMissingAddress     = fault.InvalidError("missing address")
	ErrMissingInstruction = fault.InvalidError("missing packed instruction")
	ErrMissingNATS        = fault.InvalidError("missing NATS server url")
	ErrMissingURI         = fault.InvalidError("missing content uri")
)
