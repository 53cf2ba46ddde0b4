// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/p2pwire/wire"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// record fields marshal in declaration order
type orderedRecord struct {
	r *wire.Record
}

func (o orderedRecord) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, name := range o.r.Names() {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if nil != err {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')

		value, _ := o.r.Get(name)
		v, err := json.Marshal(jsonValue(value))
		if nil != err {
			return nil, err
		}
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// decoded wire values as JSON friendly values: byte strings become
// hex, records keep their field order
func jsonValue(item interface{}) interface{} {
	switch v := item.(type) {
	case *wire.Record:
		return orderedRecord{r: v}
	case []byte:
		return hex.EncodeToString(v)
	case []interface{}:
		a := make([]interface{}, len(v))
		for i, e := range v {
			a[i] = jsonValue(e)
		}
		return a
	}
	return item
}
