// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"crypto/sha256"
	"encoding/binary"
)

// Packed - packed records are just a byte slice
type Packed []byte

// record type prefixes
var (
	confessionDiscriminator = discriminator("ConfessionAccount")
	commentDiscriminator    = discriminator("CommentAccount")
)

func discriminator(name string) [discriminatorLength]byte {
	var d [discriminatorLength]byte
	h := sha256.Sum256([]byte("account:" + name))
	copy(d[:], h[:discriminatorLength])
	return d
}

// Pack - confession in its allocated space
func (c *Confession) Pack() (Packed, error) {
	if err := ValidateContentURI(c.ContentURI); nil != err {
		return nil, err
	}

	record := make(Packed, 0, ConfessionSpace)
	record = append(record, confessionDiscriminator[:]...)
	record = append(record, c.Author[:]...)
	record = appendString(record, c.ContentURI)
	record = binary.LittleEndian.AppendUint64(record, c.LikeCount)
	record = binary.LittleEndian.AppendUint64(record, c.CommentCount)
	record = binary.LittleEndian.AppendUint64(record, uint64(c.Timestamp))
	record = append(record, c.Nonce)

	return pad(record, ConfessionSpace), nil
}

// Pack - comment in its allocated space
func (c *Comment) Pack() (Packed, error) {
	if err := ValidateContentURI(c.ContentURI); nil != err {
		return nil, err
	}

	record := make(Packed, 0, CommentSpace)
	record = append(record, commentDiscriminator[:]...)
	record = append(record, c.Confession[:]...)
	record = append(record, c.Commenter[:]...)
	record = appendString(record, c.ContentURI)
	record = binary.LittleEndian.AppendUint64(record, uint64(c.Timestamp))
	record = append(record, c.Nonce)

	return pad(record, CommentSpace), nil
}

func appendString(record Packed, s string) Packed {
	record = binary.LittleEndian.AppendUint32(record, uint32(len(s)))
	return append(record, s...)
}

// zero fill to the allocation size
func pad(record Packed, space int) Packed {
	for len(record) < space {
		record = append(record, 0)
	}
	return record
}
