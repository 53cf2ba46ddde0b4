// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/bitmark-inc/p2pwire/fault"
)

const ipv6AddressLength = 16

// the first 12 bytes of an IPv4 address mapped into IPv6
var ipv4MappedPrefix = []byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff,
}

// IPv6Address - 16 byte network address presented as text
var IPv6Address = &IPv6AddressType{}

// IPv6AddressType - 16 raw bytes on the wire
//
// IPv4 mapped addresses read as dotted decimal ("192.168.10.10"),
// everything else as eight fully expanded hex groups
// ("2001:0db8:0000:0000:0000:0000:0000:0001").  No zero run
// compression is ever produced or accepted.
type IPv6AddressType struct{}

// Read - decode to text
func (t *IPv6AddressType) Read(cursor Cursor) (interface{}, Cursor, error) {
	data, cursor, err := cursor.Read(ipv6AddressLength)
	if nil != err {
		return nil, cursor, err
	}
	if bytes.Equal(data[:12], ipv4MappedPrefix) {
		return fmt.Sprintf("%d.%d.%d.%d", data[12], data[13], data[14], data[15]), cursor, nil
	}
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = hex.EncodeToString(data[2*i : 2*i+2])
	}
	return strings.Join(groups, ":"), cursor, nil
}

// Write - text containing ':' is a flat hex string once the colons
// are removed, otherwise exactly four decimal octets
func (t *IPv6AddressType) Write(a *Accumulator, item interface{}) (*Accumulator, error) {
	text, ok := item.(string)
	if !ok {
		return a, fault.ErrWrongValueType
	}
	data, err := parseAddressText(text)
	if nil != err {
		return a, err
	}
	return a.Append(data), nil
}

func parseAddressText(text string) ([]byte, error) {
	if strings.Contains(text, ":") {
		data, err := hex.DecodeString(strings.Replace(text, ":", "", -1))
		if nil != err || ipv6AddressLength != len(data) {
			return nil, fault.ErrMalformedAddressText
		}
		return data, nil
	}

	octets := strings.Split(text, ".")
	if 4 != len(octets) {
		return nil, fault.ErrMalformedAddressText
	}
	data := make([]byte, 0, ipv6AddressLength)
	data = append(data, ipv4MappedPrefix...)
	for _, octet := range octets {
		if 0 == len(octet) || len(octet) > 3 {
			return nil, fault.ErrMalformedAddressText
		}
		n := 0
		for _, c := range octet {
			if c < '0' || c > '9' {
				return nil, fault.ErrMalformedAddressText
			}
			n = n*10 + int(c-'0')
		}
		if n > 255 {
			return nil, fault.ErrMalformedAddressText
		}
		data = append(data, byte(n))
	}
	return data, nil
}
