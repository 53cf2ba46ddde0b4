// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/p2pwire/fault"
	"github.com/bitmark-inc/p2pwire/wire"
)

func TestVarStr(t *testing.T) {
	packed, err := wire.Pack(wire.VarStr, "c2pool-test")
	require.Nil(t, err, "pack")
	assert.Equal(t, append([]byte{11}, "c2pool-test"...), packed, "packed")

	value, err := wire.Unpack(wire.VarStr, packed)
	require.Nil(t, err, "unpack")
	assert.Equal(t, []byte("c2pool-test"), value, "value")

	long := bytes.Repeat([]byte{0x5a}, 300)
	packed, err = wire.Pack(wire.VarStr, long)
	require.Nil(t, err, "pack long")
	assert.Equal(t, []byte{0xfd, 0x2c, 0x01}, packed[:3], "prefix")
	assert.Equal(t, 303, len(packed), "length")
}

func TestVarStrDoesNotAlias(t *testing.T) {
	packed := []byte{2, 'a', 'b'}
	value, err := wire.Unpack(wire.VarStr, packed)
	require.Nil(t, err, "unpack")
	packed[1] = 'z'
	assert.Equal(t, []byte("ab"), value, "copy")
}

func TestVarStrTruncated(t *testing.T) {
	tests := [][]byte{
		{},
		{3, 'a', 'b'},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 'a'},
	}
	for i, b := range tests {
		_, err := wire.Unpack(wire.VarStr, b)
		assert.Equal(t, fault.ErrEarlyEnd, err, "%d: %x", i, b)
	}
}

func TestFixedStr(t *testing.T) {
	four := wire.NewFixedStr(4)

	packed, err := wire.Pack(four, []byte{1, 2, 3, 4})
	require.Nil(t, err, "pack")
	assert.Equal(t, []byte{1, 2, 3, 4}, packed, "no prefix")

	_, err = wire.Pack(four, []byte{1, 2, 3})
	assert.Equal(t, fault.ErrLengthMismatch, err, "short")

	_, err = wire.Pack(four, "abcde")
	assert.Equal(t, fault.ErrLengthMismatch, err, "long")

	_, err = wire.Unpack(four, []byte{1, 2})
	assert.Equal(t, fault.ErrEarlyEnd, err, "truncated")

	_, err = wire.Pack(four, 1234)
	assert.Equal(t, fault.ErrWrongValueType, err, "integer")
}
