// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatBytes - Go source for a byte slice literal, for pasting the
// bytes of a reference vector into a test
func FormatBytes(name string, data []byte) string {
	var b strings.Builder
	b.WriteString(name + " := []byte{")
	for i, c := range data {
		if 0 == i%8 {
			b.WriteString("\n\t")
		} else {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "0x%02x,", c)
	}
	b.WriteString("\n}")
	return b.String()
}

// DecimalBytes - space separated decimal values, one per byte
//
// this is the form reference dumps of other implementations use, so
// outputs can be compared with diff
func DecimalBytes(data []byte) string {
	s := make([]string, len(data))
	for i, c := range data {
		s[i] = strconv.Itoa(int(c))
	}
	return strings.Join(s, " ")
}
