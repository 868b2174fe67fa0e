// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/whisperd/fault"
)

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//
//	switch r := result.(type) {
//	case *record.Confession:
//	case *record.Comment:
func (record Packed) Unpack() (Record, error) {
	if len(record) < discriminatorLength {
		return nil, fault.RecordTruncated
	}

	switch {
	case bytes.Equal(record[:discriminatorLength], confessionDiscriminator[:]):
		return ConfessionFromBytes(record)

	case bytes.Equal(record[:discriminatorLength], commentDiscriminator[:]):
		return CommentFromBytes(record)

	default:
		return nil, fault.AccountDiscriminatorMismatch
	}
}

// ConfessionFromBytes - decode a stored confession
func ConfessionFromBytes(record []byte) (*Confession, error) {
	r := reader{buffer: record}
	if !r.expect(confessionDiscriminator) {
		return nil, r.fail(fault.AccountDiscriminatorMismatch)
	}

	c := &Confession{}
	r.readKey(c.Author[:])
	c.ContentURI = r.readString()
	c.LikeCount = r.readUint64()
	c.CommentCount = r.readUint64()
	c.Timestamp = int64(r.readUint64())
	c.Nonce = r.readByte()

	if nil != r.err {
		return nil, r.err
	}
	return c, nil
}

// CommentFromBytes - decode a stored comment
func CommentFromBytes(record []byte) (*Comment, error) {
	r := reader{buffer: record}
	if !r.expect(commentDiscriminator) {
		return nil, r.fail(fault.AccountDiscriminatorMismatch)
	}

	c := &Comment{}
	r.readKey(c.Confession[:])
	r.readKey(c.Commenter[:])
	c.ContentURI = r.readString()
	c.Timestamp = int64(r.readUint64())
	c.Nonce = r.readByte()

	if nil != r.err {
		return nil, r.err
	}
	return c, nil
}

// sequential field reader, first error sticks
type reader struct {
	buffer []byte
	n      int
	err    error
}

func (r *reader) take(length int) []byte {
	if nil != r.err {
		return nil
	}
	if length < 0 || len(r.buffer)-r.n < length {
		r.err = fault.RecordTruncated
		return nil
	}
	b := r.buffer[r.n : r.n+length]
	r.n += length
	return b
}

func (r *reader) fail(err error) error {
	if nil != r.err {
		return r.err
	}
	return err
}

func (r *reader) expect(d [discriminatorLength]byte) bool {
	b := r.take(discriminatorLength)
	return nil != b && bytes.Equal(b, d[:])
}

func (r *reader) readKey(to []byte) {
	copy(to, r.take(len(to)))
}

func (r *reader) readString() string {
	prefix := r.take(stringPrefixLength)
	if nil == prefix {
		return ""
	}
	length := binary.LittleEndian.Uint32(prefix)
	if length > MaxContentURILength {
		r.err = fault.ContentUriTooLong
		return ""
	}
	return string(r.take(int(length)))
}

func (r *reader) readUint64() uint64 {
	b := r.take(8)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (r *reader) readByte() uint8 {
	b := r.take(1)
	if nil == b {
		return 0
	}
	return b[0]
}
