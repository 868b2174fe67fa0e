// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"net"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/rpc/certificate"
	"github.com/bitmark-inc/whisperd/rpc/fixtures"
)

// an address on a port that was free a moment ago
func freeAddress(t *testing.T) string {
	l, err := net.Listen("tcp4", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	defer l.Close()
	return l.Addr().String()
}

func tlsConfig(t *testing.T) (*tls.Config, [32]byte) {
	cer, key, err := fixtures.CertificatePair()
	if nil != err {
		t.Fatalf("certificate pair error: %s", err)
	}
	cfg, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	if nil != err {
		t.Fatalf("get certificate error: %s", err)
	}
	return cfg, fingerprint
}
