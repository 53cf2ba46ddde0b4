// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/p2pwire/wire"
)

// sentinel values of the optional input fields
const (
	NullIndex    uint64 = 0xffffffff
	NullSequence uint64 = 0xffffffff
)

// OutPoint - reference to an output of an earlier transaction
var OutPoint = wire.MustComposed(
	wire.Field{Name: "hash", Type: wire.Uint256},
	wire.Field{Name: "index", Type: wire.Uint32},
)

// Input - transaction input
//
// previous_output is nil for a coinbase input and sequence is nil when
// the final sequence number is used
var Input = wire.MustComposed(
	wire.Field{
		Name: "previous_output",
		Type: wire.NewPossiblyNone(wire.Map{"hash": 0, "index": NullIndex}, OutPoint),
	},
	wire.Field{Name: "script", Type: wire.VarStr},
	wire.Field{Name: "sequence", Type: wire.NewPossiblyNone(NullSequence, wire.Uint32)},
)

// Output - transaction output
var Output = wire.MustComposed(
	wire.Field{Name: "value", Type: wire.Uint64},
	wire.Field{Name: "script", Type: wire.VarStr},
)

// Witness - the witness stack of one input
var Witness = wire.NewList(wire.VarStr)

var (
	inputList  = wire.NewList(Input)
	outputList = wire.NewList(Output)
)

// Legacy - the layout without witness data
//
// this is the layout hashed for the transaction id
var Legacy = wire.MustComposed(
	wire.Field{Name: "version", Type: wire.Uint32},
	wire.Field{Name: "tx_ins", Type: inputList},
	wire.Field{Name: "tx_outs", Type: outputList},
	wire.Field{Name: "lock_time", Type: wire.Uint32},
)

// Segwit - field set of a witness flagged transaction record
//
// only Codec produces the wire layout, the witness stacks are written
// without a count after the outputs
var Segwit = wire.MustComposed(
	wire.Field{Name: "version", Type: wire.Uint32},
	wire.Field{Name: "marker", Type: wire.Uint8},
	wire.Field{Name: "flag", Type: wire.Uint8},
	wire.Field{Name: "tx_ins", Type: inputList},
	wire.Field{Name: "tx_outs", Type: outputList},
	wire.Field{Name: "witness", Type: wire.NewList(Witness)},
	wire.Field{Name: "lock_time", Type: wire.Uint32},
)
