// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/bitmark-inc/p2pwire/fault"
	"github.com/bitmark-inc/p2pwire/transaction"
	"github.com/bitmark-inc/p2pwire/wire"
)

// ChecksumLength - bytes of payload checksum in a message header
const ChecksumLength = 4

// TransactionCommand - pseudo command accepted by LookupType, Decode
// and Encode for a bare transaction
const TransactionCommand = "tx"

// command name → payload layout
var commands = map[string]*wire.ComposedType{
	"version":     Version,
	"ping":        Ping,
	"addrme":      AddrMe,
	"getaddrs":    GetAddrs,
	"addrs":       Addrs,
	"shares":      Shares,
	"sharereq":    ShareReq,
	"sharereply":  ShareReply,
	"bestblock":   BestBlock,
	"have_tx":     HaveTx,
	"losing_tx":   LosingTx,
	"forget_tx":   ForgetTx,
	"remember_tx": RememberTx,
}

// Lookup - payload layout of a command
func Lookup(command string) (*wire.ComposedType, error) {
	t, ok := commands[command]
	if !ok {
		return nil, fault.ErrUnknownCommand
	}
	return t, nil
}

// LookupType - payload layout of a command or the transaction codec
func LookupType(command string) (wire.Type, error) {
	if TransactionCommand == command {
		return transaction.Codec, nil
	}
	return Lookup(command)
}

// Commands - all command names in sorted order
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Checksum - first four bytes of the double SHA256 of a payload
func Checksum(payload []byte) [ChecksumLength]byte {
	digest := chainhash.DoubleHashB(payload)
	checksum := [ChecksumLength]byte{}
	copy(checksum[:], digest)
	return checksum
}

// Decode - unpack the payload of a command
//
// with ignoreTrailing the unused byte count is returned instead of
// failing with fault.ErrLateEnd
func Decode(command string, payload []byte, ignoreTrailing bool) (*wire.Record, int, error) {
	t, err := LookupType(command)
	if nil != err {
		return nil, 0, err
	}
	item, n, err := wire.UnpackTrailing(t, payload)
	if nil != err {
		return nil, 0, err
	}
	if !ignoreTrailing && n != len(payload) {
		return nil, 0, fault.ErrLateEnd
	}
	return item.(*wire.Record), len(payload) - n, nil
}

// Encode - pack the payload of a command
func Encode(command string, item interface{}) ([]byte, error) {
	t, err := LookupType(command)
	if nil != err {
		return nil, err
	}
	return wire.Pack(t, item)
}
