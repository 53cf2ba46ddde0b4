// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/bitmark-inc/p2pwire/fault"
)

// Field - one named member of a Composed descriptor
type Field struct {
	Name string
	Type Type
}

// ComposedType - ordered record of named fields
//
// the declaration order is the wire order
type ComposedType struct {
	fields []Field
	names  []string
	index  map[string]int
}

// NewComposed - declare a record layout
func NewComposed(fields ...Field) (*ComposedType, error) {
	t := &ComposedType{
		fields: make([]Field, len(fields)),
		names:  make([]string, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if _, ok := t.index[f.Name]; ok {
			return nil, fault.ErrDuplicateField
		}
		if nil == f.Type {
			return nil, fault.ErrWrongValueType
		}
		t.fields[i] = f
		t.names[i] = f.Name
		t.index[f.Name] = i
	}
	return t, nil
}

// MustComposed - NewComposed that panics on an invalid layout
func MustComposed(fields ...Field) *ComposedType {
	t, err := NewComposed(fields...)
	if nil != err {
		panic("wire: " + err.Error())
	}
	return t
}

// Names - field names in declaration order
func (t *ComposedType) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// FieldType - the descriptor of a named field
func (t *ComposedType) FieldType(name string) (Type, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.fields[i].Type, true
}

// Read - decode each field in order to a new *Record
func (t *ComposedType) Read(cursor Cursor) (interface{}, Cursor, error) {
	record := NewRecord(t)
	for i, f := range t.fields {
		item, next, err := f.Type.Read(cursor)
		if nil != err {
			return nil, next, err
		}
		record.values[i] = item
		cursor = next
	}
	return record, cursor, nil
}

// Write - encode the declared fields of item in declaration order
//
// item may be a *Record, a map[string]interface{} or any Fields;
// every declared name must be present, extra names are ignored
func (t *ComposedType) Write(a *Accumulator, item interface{}) (*Accumulator, error) {
	fields, err := AsFields(item)
	if nil != err {
		return a, err
	}
	for _, f := range t.fields {
		value, ok := fields.Field(f.Name)
		if !ok {
			return a, fault.ErrMissingField
		}
		a, err = f.Type.Write(a, value)
		if nil != err {
			return a, err
		}
	}
	return a, nil
}
