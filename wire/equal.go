// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"reflect"
)

// Equal - structural equality of decoded or caller built values
//
//   integers     numeric comparison across all Go integer kinds and *big.Int
//   byte strings []byte and string compare by content
//   records      see Record: record/record ignores extra fields on the
//                right, record/mapping requires the exact declared names
//   mappings     same names and Equal values
//   sequences    same length and Equal elements
//
// nil only equals nil
func Equal(a interface{}, b interface{}) bool {
	if nil == a || nil == b {
		return nil == a && nil == b
	}

	// common case of two native integers
	if x, ok := a.(uint64); ok {
		if y, ok := b.(uint64); ok {
			return x == y
		}
	}

	x, aInteger := bigFromInteger(a)
	y, bInteger := bigFromInteger(b)
	if aInteger || bInteger {
		return aInteger && bInteger && 0 == x.Cmp(y)
	}

	s, aBytes := byteString(a)
	t, bBytes := byteString(b)
	if aBytes || bBytes {
		return aBytes && bBytes && bytes.Equal(s, t)
	}

	if r, ok := a.(*Record); ok && nil != r {
		return r.equal(b)
	}
	if r, ok := b.(*Record); ok && nil != r {
		return r.equal(a)
	}

	if m, ok := mapping(a); ok {
		n, ok := mapping(b)
		if !ok || len(m) != len(n) {
			return false
		}
		for k, v := range m {
			w, ok := n[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	}

	if isSequence(a) {
		if !isSequence(b) {
			return false
		}
		p, _ := Elements(a)
		q, _ := Elements(b)
		if len(p) != len(q) {
			return false
		}
		for i := range p {
			if !Equal(p[i], q[i]) {
				return false
			}
		}
		return true
	}

	return reflect.DeepEqual(a, b)
}

func mapping(item interface{}) (map[string]interface{}, bool) {
	switch v := item.(type) {
	case map[string]interface{}:
		return v, true
	case Map:
		return v, true
	}
	return nil, false
}

func isSequence(item interface{}) bool {
	switch reflect.ValueOf(item).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}
