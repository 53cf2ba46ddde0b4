// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"

	"github.com/bitmark-inc/p2pwire/fault"
)

// Fields - name keyed access used by Composed.Write
type Fields interface {
	Field(name string) (interface{}, bool)
}

// Map - plain name → value mapping for building records
type Map map[string]interface{}

// Field - implement Fields
func (m Map) Field(name string) (interface{}, bool) {
	v, ok := m[name]
	return v, ok
}

// AsFields - accept the supported record representations
func AsFields(item interface{}) (Fields, error) {
	switch v := item.(type) {
	case *Record:
		if nil == v {
			return nil, fault.ErrWrongValueType
		}
		return v, nil
	case map[string]interface{}:
		return Map(v), nil
	case Fields:
		return v, nil
	}
	return nil, fault.ErrWrongValueType
}

// Record - decoded value of a Composed descriptor
//
// the field set is fixed by the originating descriptor.  A remembered
// packed size is kept for PackedSize and is never part of equality.
type Record struct {
	shape  *ComposedType
	values []interface{}

	sizeType Type
	size     int
}

// NewRecord - a record with every declared field set to nil
func NewRecord(shape *ComposedType) *Record {
	return &Record{
		shape:  shape,
		values: make([]interface{}, len(shape.fields)),
	}
}

// NewRecordFrom - a record holding the declared fields of item
//
// item is any representation accepted by AsFields and must supply
// every declared name
func NewRecordFrom(shape *ComposedType, item interface{}) (*Record, error) {
	fields, err := AsFields(item)
	if nil != err {
		return nil, err
	}
	r := NewRecord(shape)
	for i, name := range shape.names {
		value, ok := fields.Field(name)
		if !ok {
			return nil, fault.ErrMissingField
		}
		r.values[i] = value
	}
	return r, nil
}

// Shape - the descriptor that defines the fields
func (r *Record) Shape() *ComposedType {
	return r.shape
}

// Names - field names in declaration order
func (r *Record) Names() []string {
	return r.shape.Names()
}

// Has - true if name is a declared field
func (r *Record) Has(name string) bool {
	_, ok := r.shape.index[name]
	return ok
}

// Get - value of a declared field
func (r *Record) Get(name string) (interface{}, error) {
	i, ok := r.shape.index[name]
	if !ok {
		return nil, fault.ErrUnknownField
	}
	return r.values[i], nil
}

// Field - implement Fields
func (r *Record) Field(name string) (interface{}, bool) {
	i, ok := r.shape.index[name]
	if !ok {
		return nil, false
	}
	return r.values[i], true
}

// Set - replace the value of a declared field
func (r *Record) Set(name string, value interface{}) error {
	i, ok := r.shape.index[name]
	if !ok {
		return fault.ErrUnknownField
	}
	r.values[i] = value
	r.Invalidate()
	return nil
}

// Invalidate - forget any remembered packed size
func (r *Record) Invalidate() {
	r.sizeType = nil
	r.size = 0
}

// Map - shallow copy of the fields
func (r *Record) Map() Map {
	m := make(Map, len(r.values))
	for i, name := range r.shape.names {
		m[name] = r.values[i]
	}
	return m
}

// Equal - structural comparison, see the package Equal
func (r *Record) Equal(other interface{}) bool {
	return Equal(r, other)
}

// String - fields in declaration order, byte strings as hex
func (r *Record) String() string {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, name := range r.shape.names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		writeValue(&b, r.values[i])
	}
	b.WriteByte('}')
	return b.String()
}

func writeValue(b *bytes.Buffer, item interface{}) {
	switch v := item.(type) {
	case nil:
		b.WriteString("None")
	case []byte:
		fmt.Fprintf(b, "%x", v)
	case []interface{}:
		b.WriteByte('[')
		for i, e := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, e)
		}
		b.WriteByte(']')
	default:
		fmt.Fprintf(b, "%v", v)
	}
}

func (r *Record) cachedSize(t Type) (int, bool) {
	if nil == r.sizeType || r.sizeType != t {
		return 0, false
	}
	return r.size, true
}

func (r *Record) storeSize(t Type, size int) {
	r.sizeType = t
	r.size = size
}

// record against record: every field declared by r must match,
// fields only other has are ignored
//
// record against mapping: the mapping must have exactly the declared
// names
func (r *Record) equal(other interface{}) bool {
	switch o := other.(type) {
	case *Record:
		if nil == o {
			return false
		}
		for i, name := range r.shape.names {
			v, ok := o.Field(name)
			if !ok || !Equal(r.values[i], v) {
				return false
			}
		}
		return true
	case map[string]interface{}:
		return r.equalMapping(o)
	case Map:
		return r.equalMapping(o)
	}
	return false
}

func (r *Record) equalMapping(m map[string]interface{}) bool {
	if len(m) != len(r.values) {
		return false
	}
	for i, name := range r.shape.names {
		v, ok := m[name]
		if !ok || !Equal(r.values[i], v) {
			return false
		}
	}
	return true
}
