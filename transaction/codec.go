// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/p2pwire/fault"
	"github.com/bitmark-inc/p2pwire/wire"
)

// Codec - the segwit aware transaction descriptor
var Codec = &Type{}

// Type - reads and writes both transaction layouts
type Type struct{}

// Read - decode either layout, see the package documentation
func (t *Type) Read(cursor wire.Cursor) (interface{}, wire.Cursor, error) {
	version, cursor, err := wire.Uint32.Read(cursor)
	if nil != err {
		return nil, cursor, err
	}
	marker, cursor, err := wire.VarInt.Read(cursor)
	if nil != err {
		return nil, cursor, err
	}
	count := marker.(uint64)
	if 0 == count {
		return readSegwit(version, cursor)
	}
	return readLegacy(version, count, cursor)
}

func readSegwit(version interface{}, cursor wire.Cursor) (interface{}, wire.Cursor, error) {
	flag, cursor, err := wire.Uint8.Read(cursor)
	if nil != err {
		return nil, cursor, err
	}
	if 0 == flag.(uint64) {
		return nil, cursor, fault.ErrInvalidWitnessFlag
	}

	inputs, cursor, err := inputList.Read(cursor)
	if nil != err {
		return nil, cursor, err
	}
	outputs, cursor, err := outputList.Read(cursor)
	if nil != err {
		return nil, cursor, err
	}

	n := len(inputs.([]interface{}))
	witness := make([]interface{}, n)
	for i := 0; i < n; i += 1 {
		witness[i], cursor, err = Witness.Read(cursor)
		if nil != err {
			return nil, cursor, err
		}
	}

	lockTime, cursor, err := wire.Uint32.Read(cursor)
	if nil != err {
		return nil, cursor, err
	}

	r, err := wire.NewRecordFrom(Segwit, wire.Map{
		"version":   version,
		"marker":    uint64(0),
		"flag":      flag,
		"tx_ins":    inputs,
		"tx_outs":   outputs,
		"witness":   witness,
		"lock_time": lockTime,
	})
	if nil != err {
		return nil, cursor, err
	}
	return r, cursor, nil
}

// the marker position held the input count
func readLegacy(version interface{}, count uint64, cursor wire.Cursor) (interface{}, wire.Cursor, error) {
	capacity := count
	if remaining := uint64(cursor.Remaining()); capacity > remaining {
		capacity = remaining
	}
	inputs := make([]interface{}, 0, capacity)
	for i := uint64(0); i < count; i += 1 {
		input, next, err := Input.Read(cursor)
		if nil != err {
			return nil, next, err
		}
		inputs = append(inputs, input)
		cursor = next
	}

	outputs, cursor, err := outputList.Read(cursor)
	if nil != err {
		return nil, cursor, err
	}
	lockTime, cursor, err := wire.Uint32.Read(cursor)
	if nil != err {
		return nil, cursor, err
	}

	r, err := wire.NewRecordFrom(Legacy, wire.Map{
		"version":   version,
		"tx_ins":    inputs,
		"tx_outs":   outputs,
		"lock_time": lockTime,
	})
	if nil != err {
		return nil, cursor, err
	}
	return r, cursor, nil
}

// Write - segwit layout when IsSegwit(item), otherwise Legacy
func (t *Type) Write(a *wire.Accumulator, item interface{}) (*wire.Accumulator, error) {
	if !IsSegwit(item) {
		return Legacy.Write(a, item)
	}

	fields, err := wire.AsFields(item)
	if nil != err {
		return a, err
	}
	values, err := lookup(fields, Segwit.Names())
	if nil != err {
		return a, err
	}

	inputs, err := wire.Elements(values["tx_ins"])
	if nil != err {
		return a, err
	}
	witness, err := wire.Elements(values["witness"])
	if nil != err {
		return a, err
	}
	if len(inputs) != len(witness) {
		return a, fault.ErrWitnessCountMismatch
	}

	steps := []struct {
		t    wire.Type
		name string
	}{
		{wire.Uint32, "version"},
		{wire.Uint8, "marker"},
		{wire.Uint8, "flag"},
		{inputList, "tx_ins"},
		{outputList, "tx_outs"},
	}
	for _, step := range steps {
		a, err = step.t.Write(a, values[step.name])
		if nil != err {
			return a, err
		}
	}
	for _, stack := range witness {
		a, err = Witness.Write(a, stack)
		if nil != err {
			return a, err
		}
	}
	return wire.Uint32.Write(a, values["lock_time"])
}

func lookup(fields wire.Fields, names []string) (map[string]interface{}, error) {
	values := make(map[string]interface{}, len(names))
	for _, name := range names {
		value, ok := fields.Field(name)
		if !ok {
			return nil, fault.ErrMissingField
		}
		values[name] = value
	}
	return values, nil
}

// IsSegwit - true if item has a zero marker and a flag of at least one
func IsSegwit(item interface{}) bool {
	fields, err := wire.AsFields(item)
	if nil != err {
		return false
	}
	marker, ok := fields.Field("marker")
	if !ok || !wire.Equal(marker, 0) {
		return false
	}
	flag, ok := fields.Field("flag")
	if !ok {
		return false
	}
	n, ok := wire.Integer(flag)
	return ok && n.Sign() > 0
}
