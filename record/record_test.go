// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"encoding/hex"
	"math"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/whisperd/account"
	"github.com/bitmark-inc/whisperd/address"
	"github.com/bitmark-inc/whisperd/fault"
	"github.com/bitmark-inc/whisperd/record"
)

var (
	authorA = publicKey("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e")
	authorB = publicKey("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db")
)

func goldenRecords() map[string]record.Record {
	confessionAddress, err := address.FromBase58("E1BwgmUSVTVW4LtVB1bRawCMYYtc3rHHK6N8d8VjLgQh")
	if nil != err {
		panic(err)
	}
	return map[string]record.Record{
		"confession": &record.Confession{
			Author:       authorA,
			ContentURI:   "ipfs://abc",
			LikeCount:    1,
			CommentCount: 2,
			Timestamp:    1700000000,
			Nonce:        255,
		},
		"confession-full": &record.Confession{
			Author:       authorB,
			ContentURI:   strings.Repeat("x", record.MaxContentURILength),
			LikeCount:    math.MaxUint64,
			CommentCount: math.MaxUint64,
			Timestamp:    -1,
			Nonce:        254,
		},
		"comment": &record.Comment{
			Confession: confessionAddress,
			Commenter:  authorB,
			ContentURI: "hi",
			Timestamp:  1700000100,
			Nonce:      254,
		},
	}
}

func TestPackGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for name, r := range goldenRecords() {
		packed, err := r.Pack()
		if !assert.Nil(t, err, "%s: pack", name) {
			continue
		}
		assert.Equal(t, r.Space(), len(packed), "%s: allocated space", name)
		g.Assert(t, name, []byte(hex.EncodeToString(packed)+"\n"))
	}
}

func TestUnpackRoundTrip(t *testing.T) {
	for name, r := range goldenRecords() {
		packed, err := r.Pack()
		assert.Nil(t, err, "%s: pack", name)

		unpacked, err := packed.Unpack()
		if !assert.Nil(t, err, "%s: unpack", name) {
			continue
		}
		assert.Equal(t, r, unpacked, "%s: round trip", name)
	}
}

func TestSpace(t *testing.T) {
	assert.Equal(t, 269, record.ConfessionSpace, "confession")
	assert.Equal(t, 285, record.CommentSpace, "comment")
}

func TestValidateContentURI(t *testing.T) {
	assert.Equal(t, fault.EmptyContentUri, record.ValidateContentURI(""), "empty")
	assert.Nil(t, record.ValidateContentURI("x"), "one byte")
	assert.Nil(t, record.ValidateContentURI(strings.Repeat("a", 200)), "maximum")
	assert.Equal(t, fault.ContentUriTooLong, record.ValidateContentURI(strings.Repeat("a", 201)), "too long")

	// length is in bytes, not characters
	assert.Equal(t, fault.ContentUriTooLong, record.ValidateContentURI(strings.Repeat("é", 101)), "multibyte")
}

func TestPackRejectsBadURI(t *testing.T) {
	_, err := (&record.Confession{}).Pack()
	assert.Equal(t, fault.EmptyContentUri, err, "empty confession")

	_, err = (&record.Comment{ContentURI: strings.Repeat("a", 201)}).Pack()
	assert.Equal(t, fault.ContentUriTooLong, err, "long comment")
}

func TestUnpackErrors(t *testing.T) {
	confession, _ := goldenRecords()["confession"].Pack()
	comment, _ := goldenRecords()["comment"].Pack()

	_, err := record.Packed{}.Unpack()
	assert.Equal(t, fault.RecordTruncated, err, "empty")

	_, err = record.Packed(make([]byte, 16)).Unpack()
	assert.Equal(t, fault.AccountDiscriminatorMismatch, err, "unknown type")

	_, err = record.ConfessionFromBytes(comment)
	assert.Equal(t, fault.AccountDiscriminatorMismatch, err, "comment as confession")

	_, err = record.CommentFromBytes(confession)
	assert.Equal(t, fault.AccountDiscriminatorMismatch, err, "confession as comment")

	_, err = record.ConfessionFromBytes(confession[:4])
	assert.Equal(t, fault.RecordTruncated, err, "short discriminator")

	// "ipfs://abc" ends at 8+32+4+10, cut inside the counters
	_, err = record.ConfessionFromBytes(confession[:60])
	assert.Equal(t, fault.RecordTruncated, err, "short counters")

	// unpadded records are accepted
	c, err := record.ConfessionFromBytes(confession[:8+32+4+10+8+8+8+1])
	assert.Nil(t, err, "exact length")
	assert.Equal(t, uint8(255), c.Nonce, "nonce")
}

func TestCheckedCounters(t *testing.T) {
	c := &record.Confession{LikeCount: math.MaxUint64 - 1}

	assert.Nil(t, c.AddLike(), "last like")
	assert.Equal(t, uint64(math.MaxUint64), c.LikeCount, "at maximum")
	assert.Equal(t, fault.LikeCountOverflow, c.AddLike(), "overflow")
	assert.Equal(t, uint64(math.MaxUint64), c.LikeCount, "unchanged")

	c.CommentCount = math.MaxUint64
	assert.Equal(t, fault.CommentCountOverflow, c.AddComment(), "overflow")
	assert.Equal(t, uint64(math.MaxUint64), c.CommentCount, "unchanged")

	c.CommentCount = 0
	assert.Nil(t, c.AddComment(), "comment")
	assert.Equal(t, uint64(1), c.CommentCount, "incremented")
}

func publicKey(s string) account.PublicKey {
	var key account.PublicKey
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	copy(key[:], b)
	return key
}
