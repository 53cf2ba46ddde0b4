// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/bitmark-inc/p2pwire/fault"
)

// VarInt - the compact size integer used for counts and lengths
var VarInt = &VarIntType{}

// VarIntType - canonical variable length unsigned integer
//
// Structure:
//   value < 0xfd          1 byte: value
//   value <= 0xffff       0xfd followed by 2 bytes little endian
//   value <= 0xffffffff   0xfe followed by 4 bytes little endian
//   otherwise             0xff followed by 8 bytes little endian
//
// only the shortest form is accepted on decode
type VarIntType struct{}

// Read - decode to uint64, rejecting non-minimal encodings
func (t *VarIntType) Read(cursor Cursor) (interface{}, Cursor, error) {
	value, cursor, err := readVarInt(cursor)
	if nil != err {
		return nil, cursor, err
	}
	return value, cursor, nil
}

// Write - encode an integer in [0, 2^64)
func (t *VarIntType) Write(a *Accumulator, item interface{}) (*Accumulator, error) {
	value, err := uint64FromInteger(item)
	if nil != err {
		return a, err
	}
	return a.Append(varIntBytes(value)), nil
}

func readVarInt(cursor Cursor) (uint64, Cursor, error) {
	data, cursor, err := cursor.Read(1)
	if nil != err {
		return 0, cursor, err
	}

	length := 0
	minimum := uint64(0)
	switch first := data[0]; first {
	case 0xfd:
		length, minimum = 2, 0xfd
	case 0xfe:
		length, minimum = 4, 0x10000
	case 0xff:
		length, minimum = 8, 0x100000000
	default:
		return uint64(first), cursor, nil
	}

	data, cursor, err = cursor.Read(length)
	if nil != err {
		return 0, cursor, err
	}
	value := getUint(data, LittleEndian)
	if value < minimum {
		return 0, cursor, fault.ErrNonCanonicalEncoding
	}
	return value, cursor, nil
}

func varIntBytes(value uint64) []byte {
	var buffer []byte
	switch {
	case value < 0xfd:
		return []byte{byte(value)}
	case value <= 0xffff:
		buffer = make([]byte, 3)
		buffer[0] = 0xfd
	case value <= 0xffffffff:
		buffer = make([]byte, 5)
		buffer[0] = 0xfe
	default:
		buffer = make([]byte, 9)
		buffer[0] = 0xff
	}
	putUint(buffer[1:], value, LittleEndian)
	return buffer
}
