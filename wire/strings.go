// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/bitmark-inc/p2pwire/fault"
)

// VarStr - length prefixed byte string
var VarStr = &VarStrType{}

// VarStrType - VarInt byte count followed by the bytes
type VarStrType struct{}

// Read - decode to a new []byte
func (t *VarStrType) Read(cursor Cursor) (interface{}, Cursor, error) {
	length, cursor, err := readVarInt(cursor)
	if nil != err {
		return nil, cursor, err
	}
	if length > uint64(cursor.Remaining()) {
		return nil, cursor, fault.ErrEarlyEnd
	}
	return readCopy(cursor, int(length))
}

// Write - encode a []byte or string
func (t *VarStrType) Write(a *Accumulator, item interface{}) (*Accumulator, error) {
	data, ok := byteString(item)
	if !ok {
		return a, fault.ErrWrongValueType
	}
	return a.Append(varIntBytes(uint64(len(data)))).Append(data), nil
}

// FixedStrType - byte string of a constant length with no prefix
type FixedStrType struct {
	length int
}

// NewFixedStr - byte string of exactly length bytes
func NewFixedStr(length int) *FixedStrType {
	if length < 0 {
		panic("wire: negative fixed string length")
	}
	return &FixedStrType{length: length}
}

// Read - decode to a new []byte
func (t *FixedStrType) Read(cursor Cursor) (interface{}, Cursor, error) {
	return readCopy(cursor, t.length)
}

// Write - the item must be exactly the declared length
func (t *FixedStrType) Write(a *Accumulator, item interface{}) (*Accumulator, error) {
	data, ok := byteString(item)
	if !ok {
		return a, fault.ErrWrongValueType
	}
	if len(data) != t.length {
		return a, fault.ErrLengthMismatch
	}
	return a.Append(data), nil
}

// copy so decoded values do not pin or alias the input buffer
func readCopy(cursor Cursor, n int) (interface{}, Cursor, error) {
	data, cursor, err := cursor.Read(n)
	if nil != err {
		return nil, cursor, err
	}
	result := make([]byte, n)
	copy(result, data)
	return result, cursor, nil
}

func byteString(item interface{}) ([]byte, bool) {
	switch v := item.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	}
	return nil, false
}
