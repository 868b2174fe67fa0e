// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/whisperd/account"
	"github.com/bitmark-inc/whisperd/fault"
)

// Test privateKey functionality

type privateKeyTest struct {
	algorithm        int
	privateKey       []byte
	base58PrivateKey string
}

// Valid privateKey
var testPrivateKey = []privateKeyTest{
	{account.ED25519, decodeHex("95b5a80b4cdbe61c0f3f72cc152d4a4f29bcfd39c9a67e2c7bc6e0e14ec7c7ba55b2988817f7eaec37741b82447163caaa5a9db2b6f0ce722626338e5e3fd7f7"), "AaTfRXLmV59eCFGzBkkzYa1QbuXQBZCiAvjNdnHUaXCFJCyMCxMar6c3Qqaa1mzSPCqPK9XgpkDHcTSCTyAnMnKCHSA2Hz"},
}

// Invalid privateKey
var testInvalidPrivateKeyFromBase58 = []invalid{
	{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.CannotDecodePrivateKey}, // invalid base58 string
	{"ZxbhGmFUuwUd9XPFoRjPg77T1h29urd2e85pryntETtXCFS3FZ", fault.ChecksumMismatch},       // checksum mismatch
	{"3iNEz7VJ29DyFeiXGu9gSCUg4K6ykynfPYeyST1AWAti72mpvLd", fault.InvalidKeyType},        // undefined key algorithm
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj", fault.NotPrivateKey},          // public key
}

func TestPrivateValid(t *testing.T) {
	for index, test := range testPrivateKey {
		buffer := []byte{byte(test.algorithm << 4)}
		buffer = append(buffer, test.privateKey...)
		privateKey, err := account.PrivateKeyFromBytes(buffer)
		if !assert.Nil(t, err, "%d: create private key from bytes", index) {
			continue
		}
		assert.Equal(t, buffer, privateKey.Bytes(), "%d: bytes", index)
		assert.Equal(t, test.base58PrivateKey, privateKey.String(), "%d: base58", index)
	}
}

// From valid base58 string to privateKey
func TestPrivateValidBase58(t *testing.T) {
	for index, test := range testPrivateKey {
		prv, err := account.PrivateKeyFromBase58(test.base58PrivateKey)
		if !assert.Nil(t, err, "%d: from base58", index) {
			continue
		}
		assert.Equal(t, test.algorithm, prv.KeyType(), "%d: type", index)
		assert.Equal(t, test.privateKey, prv.PrivateKeyBytes(), "%d: key", index)
		assert.Equal(t, test.base58PrivateKey, prv.String(), "%d: to base58", index)

		// test unmarshal JSON
		j := `"` + test.base58PrivateKey + `"`
		var a account.PrivateKey
		err = json.Unmarshal([]byte(j), &a)
		if !assert.Nil(t, err, "%d: from JSON string", index) {
			continue
		}

		buffer, err := json.Marshal(a)
		assert.Nil(t, err, "%d: to JSON", index)
		assert.Equal(t, j, string(buffer), "%d: marshal JSON", index)
	}
}

// Test invalid privateKey parsing
// From privateKey base58 encoded to privateKey
func TestPrivateInvalidBase58(t *testing.T) {
	for index, test := range testInvalidPrivateKeyFromBase58 {
		_, err := account.PrivateKeyFromBase58(test.str)
		assert.Equal(t, test.err, err, "invalid base58 string: %d", index)
	}
}

func TestLiveKeyAccount(t *testing.T) {
	const address = "ajsDToCYSuK9rjSKGU6pwKGHahybu3DJ42DYbXRgHxS3Yc6CFC"
	const privateKey = "e6d85658b86242d45b52d9421736427ef22edda12c8790408c09ec3c9e356e755b4d99cc95cec16a3d489c94ba33d7fd6705c6cd3a6495c264e188b1985f4249"
	checkKeyAccount(t, false, address, privateKey)
}

func TestTestKeyAccount(t *testing.T) {
	const address = "fGcv38F4ucFwvwnepNYYDQt3eDjRaoVtLCdofMYGUENboXVQzx"
	const privateKey = "83fb4107766d5fd66d0648dcafbc6e77b24d8cced42940ae3a62bb98810e189bafeabdcd58645fa58c70fed58fea0ca95682ca4e20a4aae44319383865383b21"
	checkKeyAccount(t, true, address, privateKey)
}

func checkKeyAccount(t *testing.T, testnet bool, address string, privateKeyHex string) {
	variant := byte(account.ED25519 << 4)
	if testnet {
		variant |= 0x02
	}
	k, err := account.PrivateKeyFromBytes(append([]byte{variant}, decodeHex(privateKeyHex)...))
	if !assert.Nil(t, err, "private key") {
		return
	}

	accExpected, err := account.AccountFromBase58(address)
	if !assert.Nil(t, err, "account from base58") {
		return
	}

	accActual := k.Account()
	assert.Equal(t, accExpected.PublicKeyBytes(), accActual.PublicKeyBytes(), "public key")
	assert.Equal(t, accExpected.Bytes(), accActual.Bytes(), "bytes")
	assert.Equal(t, accExpected.String(), accActual.String(), "base58")
}

func TestSignAndCheck(t *testing.T) {
	k, err := account.NewPrivateKey(true)
	if !assert.Nil(t, err, "generate") {
		return
	}
	assert.True(t, k.IsTesting(), "network")

	message := []byte("the quick brown fox")
	signature := k.Sign(message)

	acc := k.Account()
	assert.Nil(t, acc.CheckSignature(message, signature), "valid signature")
	assert.Equal(t, fault.InvalidSignature, acc.CheckSignature([]byte("tampered"), signature), "wrong message")
	assert.Equal(t, fault.InvalidSignature, acc.CheckSignature(message, signature[:10]), "short signature")
}
