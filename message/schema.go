// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"github.com/bitmark-inc/p2pwire/transaction"
	"github.com/bitmark-inc/p2pwire/wire"
)

// Address - a peer network address
var Address = wire.MustComposed(
	wire.Field{Name: "services", Type: wire.Uint64},
	wire.Field{Name: "address", Type: wire.IPv6Address},
	wire.Field{Name: "port", Type: wire.Uint16BE},
)

// Version - handshake, the first message on a connection
//
// mode is always 1 and best_share_hash is nil for a peer without a
// share chain
var Version = wire.MustComposed(
	wire.Field{Name: "version", Type: wire.Uint32},
	wire.Field{Name: "services", Type: wire.Uint64},
	wire.Field{Name: "addr_to", Type: Address},
	wire.Field{Name: "addr_from", Type: Address},
	wire.Field{Name: "nonce", Type: wire.Uint64},
	wire.Field{Name: "sub_version", Type: wire.VarStr},
	wire.Field{Name: "mode", Type: wire.Uint32},
	wire.Field{Name: "best_share_hash", Type: wire.NewPossiblyNone(0, wire.Uint256)},
)

// Ping - keep alive
var Ping = wire.MustComposed()

// AddrMe - ask the peer to advertise our listening port
var AddrMe = wire.MustComposed(
	wire.Field{Name: "port", Type: wire.Uint16},
)

// GetAddrs - request up to count addresses
var GetAddrs = wire.MustComposed(
	wire.Field{Name: "count", Type: wire.Uint32},
)

// TimedAddress - address with the time it was last seen
var TimedAddress = wire.MustComposed(
	wire.Field{Name: "timestamp", Type: wire.Uint64},
	wire.Field{Name: "address", Type: Address},
)

// Addrs - reply to GetAddrs
var Addrs = wire.MustComposed(
	wire.Field{Name: "addrs", Type: wire.NewList(TimedAddress)},
)

// RawShare - share body still in its versioned serialised form
var RawShare = wire.MustComposed(
	wire.Field{Name: "type", Type: wire.VarInt},
	wire.Field{Name: "contents", Type: wire.VarStr},
)

// Shares - unsolicited shares
var Shares = wire.MustComposed(
	wire.Field{Name: "shares", Type: wire.NewList(RawShare)},
)

// ShareReq - request shares by hash walking back through parents
var ShareReq = wire.MustComposed(
	wire.Field{Name: "id", Type: wire.Uint256},
	wire.Field{Name: "hashes", Type: wire.NewList(wire.Uint256)},
	wire.Field{Name: "parents", Type: wire.VarInt},
	wire.Field{Name: "stops", Type: wire.NewList(wire.Uint256)},
)

// ShareReplyResult - status of a ShareReq
var ShareReplyResult = wire.MustEnum(wire.VarInt, map[interface{}]interface{}{
	0: "good",
	1: "too long",
	2: "unk2",
	3: "unk3",
	4: "unk4",
	5: "unk5",
	6: "unk6",
})

// ShareReply - answer to ShareReq with the same id
var ShareReply = wire.MustComposed(
	wire.Field{Name: "id", Type: wire.Uint256},
	wire.Field{Name: "result", Type: ShareReplyResult},
	wire.Field{Name: "shares", Type: wire.NewList(RawShare)},
)

// BlockHeader - coin block header
//
// bits is the compact target kept as its raw four bytes
var BlockHeader = wire.MustComposed(
	wire.Field{Name: "version", Type: wire.Uint32},
	wire.Field{Name: "previous_block", Type: wire.NewPossiblyNone(0, wire.Uint256)},
	wire.Field{Name: "merkle_root", Type: wire.Uint256},
	wire.Field{Name: "timestamp", Type: wire.Uint32},
	wire.Field{Name: "bits", Type: wire.NewFixedStr(4)},
	wire.Field{Name: "nonce", Type: wire.Uint32},
)

// BestBlock - header of the current best coin block
var BestBlock = wire.MustComposed(
	wire.Field{Name: "header", Type: BlockHeader},
)

var txHashes = wire.Field{Name: "tx_hashes", Type: wire.NewList(wire.Uint256)}

// HaveTx - transactions now known to the sender
var HaveTx = wire.MustComposed(txHashes)

// LosingTx - transactions the sender no longer has
var LosingTx = wire.MustComposed(txHashes)

// ForgetTx - transactions the receiver may drop from its cache
var ForgetTx = wire.MustComposed(txHashes)

// RememberTx - transactions the receiver should cache, either by hash
// of a transaction it already has or in full
var RememberTx = wire.MustComposed(
	txHashes,
	wire.Field{Name: "txs", Type: wire.NewList(transaction.Codec)},
)
