// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc tests
package fixtures

import (
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

const (
	dir = "testing"

	// LogCategory - the logger channel used by tests
	LogCategory = "testing"
)

// SetupTestLogger - start a logger writing to a throwaway directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

// Directory - where the test database and logs live
func Directory() string {
	return dir
}

// CertificatePair - a fresh self signed certificate and key in PEM form
func CertificatePair() (string, string, error) {
	cert, key, err := certgen.NewTLSCertPair("whisperd test", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		return "", "", err
	}
	return string(cert), string(key), nil
}
