// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/bitmark-inc/p2pwire/fault"
)

// PossiblyNoneType - optional value stored in a fixed slot
//
// absence (nil) is written as the sentinel, so the sentinel itself can
// never be written as a present value
//
// the reserved check uses Equal, and two mappings are only equal with
// identical keys: a mapping holding the sentinel's fields plus an extra
// key passes the check, Composed ignores the extra key, the sentinel
// bytes are written and they read back as nil
type PossiblyNoneType struct {
	sentinel interface{}
	inner    Type
}

// NewPossiblyNone - optional inner value with a reserved sentinel
func NewPossiblyNone(sentinel interface{}, inner Type) *PossiblyNoneType {
	return &PossiblyNoneType{
		sentinel: sentinel,
		inner:    inner,
	}
}

// Read - nil when the decoded value equals the sentinel
func (t *PossiblyNoneType) Read(cursor Cursor) (interface{}, Cursor, error) {
	item, cursor, err := t.inner.Read(cursor)
	if nil != err {
		return nil, cursor, err
	}
	if Equal(item, t.sentinel) {
		return nil, cursor, nil
	}
	return item, cursor, nil
}

// Write - nil writes the sentinel
func (t *PossiblyNoneType) Write(a *Accumulator, item interface{}) (*Accumulator, error) {
	if nil == item {
		return t.inner.Write(a, t.sentinel)
	}
	if Equal(item, t.sentinel) {
		return a, fault.ErrReservedSentinelUsed
	}
	return t.inner.Write(a, item)
}
