// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/bitmark-inc/p2pwire/fault"
)

// EnumType - closed bidirectional mapping between wire values and
// semantic values
type EnumType struct {
	inner Type
	pairs []enumPair
}

type enumPair struct {
	wire  interface{}
	value interface{}
}

// NewEnum - map each wire value read by inner to a semantic value
//
// both sides are compared with Equal so that, for example, int(1) and
// uint64(1) are the same key; any collision on either side is
// fault.ErrDuplicateEnumMapping
func NewEnum(inner Type, wireToValue map[interface{}]interface{}) (*EnumType, error) {
	pairs := make([]enumPair, 0, len(wireToValue))
	for w, v := range wireToValue {
		for _, p := range pairs {
			if Equal(p.value, v) || Equal(p.wire, w) {
				return nil, fault.ErrDuplicateEnumMapping
			}
		}
		pairs = append(pairs, enumPair{wire: w, value: v})
	}
	return &EnumType{inner: inner, pairs: pairs}, nil
}

// MustEnum - NewEnum that panics on a duplicate mapping
func MustEnum(inner Type, wireToValue map[interface{}]interface{}) *EnumType {
	t, err := NewEnum(inner, wireToValue)
	if nil != err {
		panic("wire: " + err.Error())
	}
	return t
}

// Read - decode the wire value and translate it
func (t *EnumType) Read(cursor Cursor) (interface{}, Cursor, error) {
	w, cursor, err := t.inner.Read(cursor)
	if nil != err {
		return nil, cursor, err
	}
	for _, p := range t.pairs {
		if Equal(p.wire, w) {
			return p.value, cursor, nil
		}
	}
	return nil, cursor, fault.ErrUnknownEnumValue
}

// Write - translate the semantic value and encode it
func (t *EnumType) Write(a *Accumulator, item interface{}) (*Accumulator, error) {
	for _, p := range t.pairs {
		if Equal(p.value, item) {
			return t.inner.Write(a, p.wire)
		}
	}
	return a, fault.ErrUnknownEnumValue
}
