// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/bitmark-inc/p2pwire/fault"
)

// Cursor - a read position within an immutable buffer
//
// cursors are values: reading returns a new cursor and leaves the
// original unchanged
type Cursor struct {
	data     []byte
	position int
}

// NewCursor - start reading at the beginning of data
func NewCursor(data []byte) Cursor {
	return Cursor{data: data}
}

// Read - return the next n bytes and the advanced cursor
//
// the returned slice shares the underlying buffer, codecs that keep
// the bytes must copy them
func (c Cursor) Read(n int) ([]byte, Cursor, error) {
	if n < 0 || n > len(c.data)-c.position {
		return nil, c, fault.ErrEarlyEnd
	}
	end := c.position + n
	return c.data[c.position:end:end], Cursor{data: c.data, position: end}, nil
}

// Position - count of bytes already consumed
func (c Cursor) Position() int {
	return c.position
}

// Remaining - count of bytes not yet consumed
func (c Cursor) Remaining() int {
	return len(c.data) - c.position
}

// Accumulator - singly linked chain of written chunks
//
// a nil *Accumulator is the empty chain; Append never copies so
// building a large message is linear, the chunks are flattened once by
// Bytes
type Accumulator struct {
	previous *Accumulator
	chunk    []byte
	length   int
}

// Append - add a chunk to the end of the chain
func (a *Accumulator) Append(chunk []byte) *Accumulator {
	return &Accumulator{
		previous: a,
		chunk:    chunk,
		length:   a.Len() + len(chunk),
	}
}

// Len - total number of bytes in the chain
func (a *Accumulator) Len() int {
	if nil == a {
		return 0
	}
	return a.length
}

// Bytes - flatten the chain into one contiguous buffer
func (a *Accumulator) Bytes() []byte {
	buffer := make([]byte, a.Len())
	end := len(buffer)
	for link := a; nil != link; link = link.previous {
		end -= len(link.chunk)
		copy(buffer[end:], link.chunk)
	}
	return buffer
}
