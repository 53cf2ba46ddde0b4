// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/p2pwire/fault"
	"github.com/bitmark-inc/p2pwire/wire"
)

func TestCursorRead(t *testing.T) {
	c := wire.NewCursor([]byte{1, 2, 3, 4, 5})

	data, c2, err := c.Read(2)
	assert.Nil(t, err, "read")
	assert.Equal(t, []byte{1, 2}, data, "first chunk")
	assert.Equal(t, 2, c2.Position(), "position")
	assert.Equal(t, 3, c2.Remaining(), "remaining")

	// the original cursor is unchanged
	assert.Equal(t, 0, c.Position(), "original position")

	data, c3, err := c2.Read(3)
	assert.Nil(t, err, "read")
	assert.Equal(t, []byte{3, 4, 5}, data, "second chunk")
	assert.Equal(t, 0, c3.Remaining(), "remaining")

	_, _, err = c3.Read(1)
	assert.Equal(t, fault.ErrEarlyEnd, err, "read past end")

	_, _, err = c.Read(-1)
	assert.Equal(t, fault.ErrEarlyEnd, err, "negative read")
}

func TestCursorChunkCannotGrow(t *testing.T) {
	c := wire.NewCursor([]byte{1, 2, 3, 4})
	data, _, err := c.Read(2)
	assert.Nil(t, err, "read")
	assert.Equal(t, 2, cap(data), "capacity limited to chunk")
}

func TestAccumulator(t *testing.T) {
	var a *wire.Accumulator
	assert.Equal(t, 0, a.Len(), "empty length")
	assert.Equal(t, []byte{}, a.Bytes(), "empty bytes")

	a = a.Append([]byte{1, 2}).Append(nil).Append([]byte{3}).Append([]byte{4, 5, 6})
	assert.Equal(t, 6, a.Len(), "length")
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, a.Bytes(), "flattened")
}

func TestAccumulatorBranches(t *testing.T) {
	base := (*wire.Accumulator)(nil).Append([]byte{0xaa})
	left := base.Append([]byte{0x01})
	right := base.Append([]byte{0x02, 0x03})

	assert.Equal(t, []byte{0xaa, 0x01}, left.Bytes(), "left")
	assert.Equal(t, []byte{0xaa, 0x02, 0x03}, right.Bytes(), "right")
}
