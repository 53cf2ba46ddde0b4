// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"math/big"

	"github.com/bitmark-inc/p2pwire/fault"
)

// Endianness - byte order of a fixed width integer
type Endianness int

// byte orders
const (
	LittleEndian Endianness = iota
	BigEndian
)

// predeclared integer descriptors
var (
	Uint8    = &FixedIntType{bytes: 1, order: LittleEndian}
	Uint16   = &FixedIntType{bytes: 2, order: LittleEndian}
	Uint32   = &FixedIntType{bytes: 4, order: LittleEndian}
	Uint64   = &FixedIntType{bytes: 8, order: LittleEndian}
	Uint16BE = &FixedIntType{bytes: 2, order: BigEndian}
	Uint160  = MustBigInt(160, LittleEndian)
	Uint256  = MustBigInt(256, LittleEndian)
)

// NewFixedInt - unsigned integer of bits width
//
// widths of 8, 16, 32 and 64 bits use a native uint64 codec, all
// others the arbitrary precision one; the byte layout is identical
func NewFixedInt(bits int, order Endianness) (Type, error) {
	if err := checkWidth(bits, order); nil != err {
		return nil, err
	}
	switch bits {
	case 8, 16, 32, 64:
		return &FixedIntType{bytes: bits / 8, order: order}, nil
	}
	return NewBigInt(bits, order)
}

// MustFixedInt - NewFixedInt that panics on invalid arguments
func MustFixedInt(bits int, order Endianness) Type {
	t, err := NewFixedInt(bits, order)
	if nil != err {
		panic("wire: " + err.Error())
	}
	return t
}

// NewBigInt - arbitrary precision unsigned integer of bits width
func NewBigInt(bits int, order Endianness) (*BigIntType, error) {
	if err := checkWidth(bits, order); nil != err {
		return nil, err
	}
	return &BigIntType{
		bytes: bits / 8,
		order: order,
		limit: new(big.Int).Lsh(big.NewInt(1), uint(bits)),
	}, nil
}

// MustBigInt - NewBigInt that panics on invalid arguments
func MustBigInt(bits int, order Endianness) *BigIntType {
	t, err := NewBigInt(bits, order)
	if nil != err {
		panic("wire: " + err.Error())
	}
	return t
}

func checkWidth(bits int, order Endianness) error {
	if bits <= 0 || 0 != bits%8 {
		return fault.ErrInvalidBitWidth
	}
	if LittleEndian != order && BigEndian != order {
		return fault.ErrInvalidEndianness
	}
	return nil
}

// FixedIntType - native codec for integers of at most 64 bits
type FixedIntType struct {
	bytes int
	order Endianness
}

// Read - decode to uint64
func (t *FixedIntType) Read(cursor Cursor) (interface{}, Cursor, error) {
	data, cursor, err := cursor.Read(t.bytes)
	if nil != err {
		return nil, cursor, err
	}
	return getUint(data, t.order), cursor, nil
}

// Write - encode any Go integer or *big.Int in [0, 2^bits)
func (t *FixedIntType) Write(a *Accumulator, item interface{}) (*Accumulator, error) {
	value, err := uint64FromInteger(item)
	if nil != err {
		return a, err
	}
	if t.bytes < 8 && value >= uint64(1)<<uint(8*t.bytes) {
		return a, fault.ErrOutOfRange
	}
	buffer := make([]byte, t.bytes)
	putUint(buffer, value, t.order)
	return a.Append(buffer), nil
}

// BigIntType - arbitrary precision codec
type BigIntType struct {
	bytes int
	order Endianness
	limit *big.Int
}

// Read - decode to *big.Int
func (t *BigIntType) Read(cursor Cursor) (interface{}, Cursor, error) {
	data, cursor, err := cursor.Read(t.bytes)
	if nil != err {
		return nil, cursor, err
	}
	buffer := make([]byte, len(data))
	copy(buffer, data)
	if LittleEndian == t.order {
		reverse(buffer)
	}
	return new(big.Int).SetBytes(buffer), cursor, nil
}

// Write - encode any Go integer or *big.Int in [0, 2^bits)
func (t *BigIntType) Write(a *Accumulator, item interface{}) (*Accumulator, error) {
	value, ok := bigFromInteger(item)
	if !ok {
		return a, fault.ErrWrongValueType
	}
	if value.Sign() < 0 || value.Cmp(t.limit) >= 0 {
		return a, fault.ErrOutOfRange
	}
	buffer := make([]byte, t.bytes)
	b := value.Bytes()
	copy(buffer[len(buffer)-len(b):], b)
	if LittleEndian == t.order {
		reverse(buffer)
	}
	return a.Append(buffer), nil
}

// HashInteger - interpret a 32 byte digest as a little endian integer
func HashInteger(digest []byte) (*big.Int, error) {
	item, err := Unpack(Uint256, digest)
	if nil != err {
		return nil, err
	}
	return item.(*big.Int), nil
}

// Integer - numeric value of any Go integer kind or *big.Int
//
// a *big.Int argument is returned as is and must not be modified
func Integer(item interface{}) (*big.Int, bool) {
	return bigFromInteger(item)
}

func getUint(data []byte, order Endianness) uint64 {
	value := uint64(0)
	n := len(data)
	for i := 0; i < n; i += 1 {
		b := data[i]
		if LittleEndian == order {
			b = data[n-1-i]
		}
		value = value<<8 | uint64(b)
	}
	return value
}

func putUint(buffer []byte, value uint64, order Endianness) {
	n := len(buffer)
	for i := 0; i < n; i += 1 {
		if LittleEndian == order {
			buffer[i] = byte(value)
		} else {
			buffer[n-1-i] = byte(value)
		}
		value >>= 8
	}
}

func reverse(buffer []byte) {
	for i, j := 0, len(buffer)-1; i < j; i, j = i+1, j-1 {
		buffer[i], buffer[j] = buffer[j], buffer[i]
	}
}

// bigFromInteger - any Go integer kind as a new *big.Int
func bigFromInteger(item interface{}) (*big.Int, bool) {
	switch v := item.(type) {
	case int:
		return big.NewInt(int64(v)), true
	case int8:
		return big.NewInt(int64(v)), true
	case int16:
		return big.NewInt(int64(v)), true
	case int32:
		return big.NewInt(int64(v)), true
	case int64:
		return big.NewInt(v), true
	case uint:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint64:
		return new(big.Int).SetUint64(v), true
	case *big.Int:
		if nil == v {
			return nil, false
		}
		return v, true
	}
	return nil, false
}

// uint64FromInteger - negative and wider than 64 bit values are out
// of range
func uint64FromInteger(item interface{}) (uint64, error) {
	switch v := item.(type) {
	case uint64:
		return v, nil
	case uint32:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case uint:
		return uint64(v), nil
	}
	value, ok := bigFromInteger(item)
	if !ok {
		return 0, fault.ErrWrongValueType
	}
	if value.Sign() < 0 || !value.IsUint64() {
		return 0, fault.ErrOutOfRange
	}
	return value.Uint64(), nil
}
