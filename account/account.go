// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/util"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	ED25519 = 1
	// end of list (one greater than last item)
	algorithmLimit = 2
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// PublicKey - the raw key bytes as held in ledger records
type PublicKey [ed25519.PublicKeySize]byte

// Account - base type for accounts
type Account struct {
	AccountInterface
}

// AccountInterface - methods for a specific key type
type AccountInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	CheckSignature(message []byte, signature Signature) error
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
	IsTesting() bool
	IsZero() bool
}

// ED25519Account - for ed25519 signatures
type ED25519Account struct {
	Test      bool
	PublicKey []byte
}

// AccountFromBase58 - this converts a Base58 encoded string and returns an account
//
// one of the specific account types are returned using the base "AccountInterface"
// interface type to allow individual methods to be called.
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	// Parse the key variant
	keyVariant, keyVariantLength := util.FromVarint64(accountDecoded)

	// Check key type
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	// compute algorithm
	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm != ED25519 {
		return nil, fault.InvalidKeyType
	}

	// network selection
	isTest := 0 != keyVariant&testKeyCode

	// Compute key length
	keyLength := len(accountDecoded) - keyVariantLength - checksumLength
	if keyLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	// Checksum
	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	if keyLength != ed25519.PublicKeySize {
		return nil, fault.InvalidKeyLength
	}
	account := &Account{
		AccountInterface: &ED25519Account{
			Test:      isTest,
			PublicKey: accountDecoded[keyVariantLength:checksumStart],
		},
	}
	return account, nil
}

// AccountFromBytes - this converts a byte encoded buffer and returns an account
func AccountFromBytes(accountBytes []byte) (*Account, error) {

	// Parse the key variant
	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)

	// Check key type
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	// compute algorithm
	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm != ED25519 {
		return nil, fault.InvalidKeyType
	}

	// network selection
	isTest := 0 != keyVariant&testKeyCode

	// Compute key length
	keyLength := len(accountBytes) - keyVariantLength
	if keyLength != ed25519.PublicKeySize {
		return nil, fault.InvalidKeyLength
	}

	account := &Account{
		AccountInterface: &ED25519Account{
			Test:      isTest,
			PublicKey: accountBytes[keyVariantLength:],
		},
	}
	return account, nil
}

// AccountFromPublicKey - wrap a raw record key as an account on the given network
func AccountFromPublicKey(key PublicKey, testing bool) *Account {
	publicKey := make([]byte, len(key))
	copy(publicKey, key[:])
	return &Account{
		AccountInterface: &ED25519Account{
			Test:      testing,
			PublicKey: publicKey,
		},
	}
}

// UnmarshalText - convert Base58 text into an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.AccountInterface = a.AccountInterface
	return nil
}

// Key - the raw public key used as a derivation seed and record field
func (account *Account) Key() PublicKey {
	var key PublicKey
	if nil != account && nil != account.AccountInterface {
		copy(key[:], account.PublicKeyBytes())
	}
	return key
}

// String - base58 of the raw key, as shown for record fields
func (key PublicKey) String() string {
	return base58.Encode(key[:])
}

// MarshalText - convert a raw key to its base58 JSON form
func (key PublicKey) MarshalText() ([]byte, error) {
	return []byte(key.String()), nil
}

// UnmarshalText - convert base58 text into a raw key
func (key *PublicKey) UnmarshalText(s []byte) error {
	buffer, err := base58.Decode(string(s))
	if nil != err {
		return fault.CannotDecodeAccount
	}
	if len(buffer) != len(key) {
		return fault.InvalidKeyLength
	}
	copy(key[:], buffer)
	return nil
}

// ED25519
// -------

// KeyType - key type code (see enumeration above)
func (account *ED25519Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *ED25519Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - check the signature of a message
func (account *ED25519Account) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}

	if ed25519.PublicKeySize != len(account.PublicKey) {
		return fault.InvalidKeyLength
	}

	if !ed25519.Verify(account.PublicKey[:], message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *ED25519Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey[:]...)
}

// String - base58 encoding of encoded key
func (account *ED25519Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its Base58 JSON form
func (account ED25519Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - return whether the public key is in test mode or not
func (account ED25519Account) IsTesting() bool {
	return account.Test
}

// IsZero - check if the public key is all zero bytes
func (account ED25519Account) IsZero() bool {
	for _, b := range account.PublicKey {
		if 0 != b {
			return false
		}
	}
	return true
}
