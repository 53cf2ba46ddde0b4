// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire - composable binary codecs for the share-chain peer
// protocol
//
// Every wire format is described by a Type: a small immutable value
// that can Read a decoded value from a Cursor and Write a value onto an
// Accumulator.  Message schemas are built by nesting the primitive
// descriptors (VarInt, fixed width integers, byte strings) inside the
// composite ones (List, Enum, Composed, PossiblyNone).
//
// Decoded values are one of:
//
//   uint64        VarInt and fixed width integers of 8/16/32/64 bits
//   *big.Int      wider fixed width integers
//   []byte        VarStr and FixedStr
//   string        IPv6Address text
//   []interface{} List
//   *Record       Composed
//   nil           absent PossiblyNone value
//
// Writers are more permissive: any Go integer kind or *big.Int is
// accepted for an integer, a string for a byte string, any slice for a
// List and any Fields implementation (including a plain
// map[string]interface{}) for a Composed.
//
// Descriptors hold no per-call state and are safe for concurrent use.
// Records are plain data and must not be mutated concurrently.
package wire
