// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/p2pwire/fault"
	"github.com/bitmark-inc/p2pwire/wire"
)

var pairType = wire.MustComposed(
	wire.Field{Name: "a", Type: wire.Uint8},
	wire.Field{Name: "b", Type: wire.Uint16},
)

func TestComposedFieldOrder(t *testing.T) {
	expected := []byte{1, 2, 0}

	inputs := []interface{}{
		map[string]interface{}{"b": 2, "a": 1},
		map[string]interface{}{"a": 1, "b": 2},
		wire.Map{"b": 2, "a": 1},
		wire.Map{"b": 2, "a": 1, "extra": "ignored"},
	}
	for i, item := range inputs {
		// repeat to exercise different map iteration orders
		for j := 0; j < 10; j += 1 {
			packed, err := wire.Pack(pairType, item)
			require.Nil(t, err, "%d: pack", i)
			assert.Equal(t, expected, packed, "%d: packed", i)
		}
	}
}

func TestComposedRead(t *testing.T) {
	value, err := wire.Unpack(pairType, []byte{1, 2, 0})
	require.Nil(t, err, "unpack")

	r := value.(*wire.Record)
	assert.Equal(t, []string{"a", "b"}, r.Names(), "names")

	a, err := r.Get("a")
	require.Nil(t, err, "get a")
	assert.Equal(t, uint64(1), a, "a")

	_, err = r.Get("c")
	assert.Equal(t, fault.ErrUnknownField, err, "undeclared")

	assert.Equal(t, "{a: 1, b: 2}", r.String(), "string")

	packed, err := wire.Pack(pairType, r)
	require.Nil(t, err, "repack")
	assert.Equal(t, []byte{1, 2, 0}, packed, "round trip")
}

func TestComposedMissingField(t *testing.T) {
	_, err := wire.Pack(pairType, map[string]interface{}{"a": 1})
	assert.Equal(t, fault.ErrMissingField, err, "missing b")

	_, err = wire.Pack(pairType, 7)
	assert.Equal(t, fault.ErrWrongValueType, err, "not a record")
}

func TestComposedDuplicateField(t *testing.T) {
	_, err := wire.NewComposed(
		wire.Field{Name: "a", Type: wire.Uint8},
		wire.Field{Name: "a", Type: wire.Uint16},
	)
	assert.Equal(t, fault.ErrDuplicateField, err, "duplicate")
}

func TestComposedTruncated(t *testing.T) {
	_, err := wire.Unpack(pairType, []byte{1, 2})
	assert.Equal(t, fault.ErrEarlyEnd, err, "short")
}

func TestRecordSet(t *testing.T) {
	r := wire.NewRecord(pairType)
	assert.Nil(t, r.Set("a", 5), "set a")
	assert.Nil(t, r.Set("b", 6), "set b")
	assert.Equal(t, fault.ErrUnknownField, r.Set("z", 1), "set undeclared")
	assert.True(t, r.Has("a"), "has a")
	assert.False(t, r.Has("z"), "has z")

	packed, err := wire.Pack(pairType, r)
	require.Nil(t, err, "pack")
	assert.Equal(t, []byte{5, 6, 0}, packed, "packed")
}

func TestRecordEquality(t *testing.T) {
	value, err := wire.Unpack(pairType, []byte{1, 2, 0})
	require.Nil(t, err, "unpack")
	r := value.(*wire.Record)

	// record against mapping needs exactly the declared names
	assert.True(t, r.Equal(map[string]interface{}{"a": 1, "b": 2}), "mapping")
	assert.True(t, wire.Equal(wire.Map{"a": 1, "b": 2}, r), "mapping on the left")
	assert.False(t, r.Equal(map[string]interface{}{"a": 1, "b": 2, "c": 3}), "extra key in mapping")
	assert.False(t, r.Equal(map[string]interface{}{"a": 1}), "missing key in mapping")
	assert.False(t, r.Equal(map[string]interface{}{"a": 1, "b": 3}), "different value")

	// record against record ignores fields only the other has
	wider := wire.MustComposed(
		wire.Field{Name: "a", Type: wire.Uint8},
		wire.Field{Name: "b", Type: wire.Uint16},
		wire.Field{Name: "c", Type: wire.Uint8},
	)
	w := wire.NewRecord(wider)
	require.Nil(t, w.Set("a", 1), "set")
	require.Nil(t, w.Set("b", 2), "set")
	require.Nil(t, w.Set("c", 9), "set")
	assert.True(t, r.Equal(w), "record against wider record")
	assert.False(t, w.Equal(r), "wider record against record")

	assert.False(t, r.Equal(nil), "nil")
	assert.False(t, r.Equal(5), "integer")
}

func TestRecordMap(t *testing.T) {
	value, err := wire.Unpack(pairType, []byte{1, 2, 0})
	require.Nil(t, err, "unpack")
	m := value.(*wire.Record).Map()
	assert.Equal(t, wire.Map{"a": uint64(1), "b": uint64(2)}, m, "map")
}
