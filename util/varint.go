// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// AppendVarint64 - append the Varint64 form of a value to a buffer
//
// the first eight bytes carry seven bits each with the top bit set
// when more follow, a ninth byte carries the remaining eight bits
func AppendVarint64(buffer []byte, value uint64) []byte {
	for i := 1; i < Varint64MaximumBytes; i += 1 {
		if value < 0x80 {
			return append(buffer, byte(value))
		}
		buffer = append(buffer, byte(value)|0x80)
		value >>= 7
	}
	return append(buffer, byte(value))
}

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
func ToVarint64(value uint64) []byte {
	return AppendVarint64(make([]byte, 0, Varint64MaximumBytes), value)
}

// FromVarint64 - decode a Varint64 from the start of a buffer
//
// returns the value and the number of bytes used, or 0, 0 if the
// buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	value := uint64(0)
	for i, b := range buffer {
		if i == Varint64MaximumBytes-1 {
			return value | uint64(b)<<(7*uint(i)), i + 1
		}
		value |= uint64(b&0x7f) << (7 * uint(i))
		if 0 == b&0x80 {
			return value, i + 1
		}
	}
	return 0, 0
}

// ClippedVarint64 - decode a Varint64 that must lie in minimum..maximum
//
// returns 0, 0 for a bad range, a truncated buffer or a value outside
// the range
func ClippedVarint64(buffer []byte, minimum int, maximum int) (int, int) {
	if minimum < 0 || maximum < 0 || minimum >= maximum {
		return 0, 0
	}

	value, count := FromVarint64(buffer)
	if 0 == count || value > uint64(maximum) || value < uint64(minimum) {
		return 0, 0
	}
	return int(value), count
}
