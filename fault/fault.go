// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AccountDiscriminatorMismatch = RecordError("account discriminator mismatch")
	AddressAlreadyOccupied       = ExistsError("address already occupied")
	AddressMismatch              = RecordError("address does not match its derivation seeds")
	AddressNotFound              = NotFoundError("address not found")
	AlreadyInitialised           = InvalidError("already initialised")
	CannotDecodeAccount          = InvalidError("cannot decode account")
	CannotDecodeAddress          = InvalidError("cannot decode address")
	CannotDecodePrivateKey       = InvalidError("cannot decode private key")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	CommentCountOverflow         = ProcessError("comment count overflow")
	ContentUriTooLong            = LengthError("content uri exceeds maximum allowed length")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DatabaseIsReadOnly           = ProcessError("database is read only")
	EmptyContentUri              = LengthError("content uri cannot be empty")
	InsufficientAllocationSpace  = ProcessError("insufficient allocation space")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidSeed                  = InvalidError("invalid derivation seed")
	InvalidSignature             = AuthorisationError("invalid signature")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	LikeCountOverflow            = ProcessError("like count overflow")
	MissingParameters            = InvalidError("missing parameters")
	MissingPrivateKey            = InvalidError("missing private key")
	MissingSignature             = AuthorisationError("missing signature")
	NoValidNonce                 = ProcessError("unable to find a valid derivation nonce")
	NotInstructionPack           = RecordError("not an instruction pack")
	NotInitialised               = InvalidError("not initialised")
	NotPublicKey                 = InvalidError("not a public key")
	NotPrivateKey                = InvalidError("not a private key")
	RecordTruncated              = RecordError("record is truncated")
	SignatureTooLong             = LengthError("signature too long")
	TransactionAlreadyInUse      = ProcessError("transaction already in use")
	TransactionNotStarted        = ProcessError("transaction not started")
	UnknownInstruction           = InvalidError("unknown instruction")
	WrongNetworkForPrivateKey    = InvalidError("wrong network for private key")
	WrongNetworkForPublicKey     = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
