// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"os"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/util"
)

const validity = 10 * 365 * 24 * time.Hour

// Get - check a PEM certificate and key pair and return the TLS
// configuration with the certificate fingerprint
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Fingerprint - compute the fingerprint of a DER certificate
//
// openssl x509 -outform DER -in whisperd-local-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// Generate - write a new self signed certificate and its key
//
// existing files are never overwritten
func Generate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {

	if util.EnsureFileExists(certificateFileName) {
		return fault.CertificateFileAlreadyExists
	}

	if util.EnsureFileExists(privateKeyFileName) {
		return fault.KeyFileAlreadyExists
	}

	org := "whisperd self signed cert for: " + name
	validUntil := time.Now().Add(validity)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if err != nil {
		return err
	}

	if err = os.WriteFile(certificateFileName, cert, 0666); err != nil {
		return err
	}

	if err = os.WriteFile(privateKeyFileName, key, 0600); err != nil {
		_ = os.Remove(certificateFileName)
		return err
	}

	return nil
}
