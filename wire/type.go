// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"reflect"

	"github.com/bitmark-inc/p2pwire/fault"
)

// Type - a descriptor for one wire format
//
// Read decodes one value starting at the cursor and returns the
// advanced cursor.  Write encodes item after the chunks already in the
// accumulator and returns the extended chain.  On error the returned
// cursor or accumulator must not be used.
type Type interface {
	Read(cursor Cursor) (interface{}, Cursor, error)
	Write(accumulator *Accumulator, item interface{}) (*Accumulator, error)
}

// Pack - encode item to a new byte slice
func Pack(t Type, item interface{}) ([]byte, error) {
	a, err := t.Write(nil, item)
	if nil != err {
		return nil, err
	}
	return a.Bytes(), nil
}

// Unpack - decode the whole of data
//
// any bytes left over after the value give fault.ErrLateEnd
func Unpack(t Type, data []byte) (interface{}, error) {
	item, n, err := UnpackTrailing(t, data)
	if nil != err {
		return nil, err
	}
	if n != len(data) {
		return nil, fault.ErrLateEnd
	}
	return item, nil
}

// UnpackTrailing - decode a value from the start of data and return
// the number of bytes it occupied, trailing bytes are permitted
func UnpackTrailing(t Type, data []byte) (interface{}, int, error) {
	item, cursor, err := t.Read(NewCursor(data))
	if nil != err {
		return nil, 0, err
	}
	return item, cursor.Position(), nil
}

// PackedSize - number of bytes item occupies when written by t
//
// when item is a *Record the result is remembered on the record,
// tagged with t; any other descriptor recomputes it.  Record.Set
// clears the remembered size, but changes made inside nested values
// are not seen, call Record.Invalidate after such changes.
func PackedSize(t Type, item interface{}) (int, error) {
	record, isRecord := item.(*Record)
	cacheable := isRecord && nil != record && comparableType(t)
	if cacheable {
		if size, ok := record.cachedSize(t); ok {
			return size, nil
		}
	}

	a, err := t.Write(nil, item)
	if nil != err {
		return 0, err
	}
	size := a.Len()

	if cacheable {
		record.storeSize(t, size)
	}
	return size, nil
}

// descriptor identity is an == comparison on the interface value
// which would panic for non-comparable dynamic types
func comparableType(t Type) bool {
	return nil != t && reflect.TypeOf(t).Comparable()
}
