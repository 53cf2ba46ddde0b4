// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package message - payload layouts of the share chain peer messages
//
// each command name maps to one Composed descriptor for its payload;
// framing (magic, command, length and checksum header) belongs to the
// transport, only the payload checksum is provided here
package message
