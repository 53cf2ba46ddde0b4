// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"math/bits"
	"reflect"

	"github.com/bitmark-inc/p2pwire/fault"
)

// ListType - VarInt count followed by the elements
//
// with a multiplicity m the wire count is the number of elements
// divided by m
type ListType struct {
	element      Type
	multiplicity uint64
}

// NewList - homogeneous list of element
func NewList(element Type) *ListType {
	return NewListMultiple(element, 1)
}

// NewListMultiple - list whose length is always a multiple of
// multiplicity
//
// the element must consume at least one byte, otherwise a wire count
// near 2^63 would loop without reading anything
func NewListMultiple(element Type, multiplicity int) *ListType {
	if multiplicity < 1 {
		panic("wire: list multiplicity must be positive")
	}
	if zeroWidth(element) {
		panic("wire: list element must not be zero width")
	}
	return &ListType{
		element:      element,
		multiplicity: uint64(multiplicity),
	}
}

// Element - the descriptor of each element
func (t *ListType) Element() Type {
	return t.element
}

// Read - decode to []interface{} preserving order
func (t *ListType) Read(cursor Cursor) (interface{}, Cursor, error) {
	count, cursor, err := readVarInt(cursor)
	if nil != err {
		return nil, cursor, err
	}
	high, total := bits.Mul64(count, t.multiplicity)
	if 0 != high || total > uint64(maxInt) {
		return nil, cursor, fault.ErrOutOfRange
	}

	// do not trust the count for the allocation
	capacity := total
	if remaining := uint64(cursor.Remaining()); capacity > remaining {
		capacity = remaining
	}
	result := make([]interface{}, 0, capacity)

	for i := uint64(0); i < total; i += 1 {
		var item interface{}
		item, cursor, err = t.element.Read(cursor)
		if nil != err {
			return nil, cursor, err
		}
		result = append(result, item)
	}
	return result, cursor, nil
}

// Write - encode any slice or array
func (t *ListType) Write(a *Accumulator, item interface{}) (*Accumulator, error) {
	elements, err := Elements(item)
	if nil != err {
		return a, err
	}
	length := uint64(len(elements))
	if 0 != length%t.multiplicity {
		return a, fault.ErrListMultiplicity
	}
	a = a.Append(varIntBytes(length / t.multiplicity))
	for _, element := range elements {
		a, err = t.element.Write(a, element)
		if nil != err {
			return a, err
		}
	}
	return a, nil
}

// an element that decodes from an empty buffer reads no bytes
func zeroWidth(element Type) bool {
	_, _, err := element.Read(NewCursor(nil))
	return nil == err
}

const maxInt = int(^uint(0) >> 1)

// Elements - view any slice or array as []interface{}
func Elements(item interface{}) ([]interface{}, error) {
	switch v := item.(type) {
	case []interface{}:
		return v, nil
	case nil:
		return nil, fault.ErrWrongValueType
	}
	value := reflect.ValueOf(item)
	switch value.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fault.ErrWrongValueType
	}
	result := make([]interface{}, value.Len())
	for i := range result {
		result[i] = value.Index(i).Interface()
	}
	return result, nil
}
