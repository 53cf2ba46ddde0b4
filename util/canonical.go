// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/p2pwire/fault"
)

// CanonicalIPandPort - split host:port into address text suitable
// for the wire address codec and a port number
//
// examples:
//   IPv4:  127.0.0.1:1234  →  "127.0.0.1", 1234
//   IPv6:  [::1]:1234      →  "0000:0000:0000:0000:0000:0000:0000:0001", 1234
func CanonicalIPandPort(hostPort string) (string, uint16, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", 0, fault.ErrInvalidIPAddress
	}

	IP := net.ParseIP(strings.TrimSpace(host))
	if nil == IP {
		return "", 0, fault.ErrInvalidIPAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err || numericPort < 1 || numericPort > 65535 {
		return "", 0, fault.ErrInvalidPortNumber
	}

	if ip4 := IP.To4(); nil != ip4 {
		return ip4.String(), uint16(numericPort), nil
	}

	groups := make([]string, 8)
	for i := range groups {
		groups[i] = fmt.Sprintf("%02x%02x", IP[2*i], IP[2*i+1])
	}
	return strings.Join(groups, ":"), uint16(numericPort), nil
}
