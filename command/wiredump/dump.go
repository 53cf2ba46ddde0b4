// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/bitmark-inc/p2pwire/configuration"
	"github.com/bitmark-inc/p2pwire/fault"
	"github.com/bitmark-inc/p2pwire/message"
	"github.com/bitmark-inc/p2pwire/util"
	"github.com/bitmark-inc/p2pwire/wire"
)

// the checked result of one vector
type dump struct {
	name     string
	command  string
	record   *wire.Record
	packed   []byte
	trailing int
	checksum [message.ChecksumLength]byte
}

// decode, repack and compare one vector
func dumpVector(v configuration.Vector) (*dump, error) {
	data := v.Data()

	r, trailing, err := message.Decode(v.Command, data, v.IgnoreTrailing)
	if nil != err {
		return nil, err
	}

	// a record the same schema just decoded must encode again
	packed, err := message.Encode(v.Command, r)
	fault.PanicIfError("re-encode of vector: "+v.Name, err)

	if !bytes.Equal(packed, data[:len(data)-trailing]) {
		return nil, fault.ErrVectorMismatch
	}

	checksum := message.Checksum(packed)
	if expected := v.ExpectedChecksum(); nil != expected && !bytes.Equal(expected, checksum[:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return &dump{
		name:     v.Name,
		command:  v.Command,
		record:   r,
		packed:   packed,
		trailing: trailing,
		checksum: checksum,
	}, nil
}

// bad input is reported per vector, but re-encoding to different
// bytes means the codec itself is broken
func isCodecDefect(err error) bool {
	return fault.ErrVectorMismatch == err
}

// decimal byte listing, as the reference dumps of other
// implementations print it, followed by the checksum
func (d *dump) print(w io.Writer) {
	fmt.Fprintf(w, "# %s (%s, %d bytes)\n", d.name, d.command, len(d.packed))
	fmt.Fprintf(w, "%s\n", util.DecimalBytes(d.packed))
	if d.trailing > 0 {
		fmt.Fprintf(w, "trailing: %d\n", d.trailing)
	}
	fmt.Fprintf(w, "checksum: %s\n", hex.EncodeToString(d.checksum[:]))
	fmt.Fprintf(w, "%s\n", util.DecimalBytes(d.checksum[:]))
}

// all vectors, or only those named in the arguments in that order
func selectVectors(vectors []configuration.Vector, names []string) ([]configuration.Vector, error) {
	if 0 == len(names) {
		return vectors, nil
	}
	selected := make([]configuration.Vector, 0, len(names))
loop:
	for _, name := range names {
		for _, v := range vectors {
			if name == v.Name {
				selected = append(selected, v)
				continue loop
			}
		}
		return nil, fmt.Errorf("vector: %q is not configured", name)
	}
	return selected, nil
}
