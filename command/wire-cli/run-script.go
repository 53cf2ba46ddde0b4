// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/p2pwire/message"
	"github.com/bitmark-inc/p2pwire/script"
	"github.com/bitmark-inc/p2pwire/util"
	"github.com/bitmark-inc/p2pwire/wire"
)

type scriptResult struct {
	Version    *byte  `json:"version,omitempty"`
	PubKeyHash string `json:"pub_key_hash"`
	Script     string `json:"script"`
}

func runP2PKH(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	given := 0
	for _, name := range []string{"address", "hash", "public-key"} {
		if "" != c.String(name) {
			given += 1
		}
	}
	switch given {
	case 0:
		return ErrMissingOption
	case 1:
	default:
		return ErrConflictingOptions
	}

	result := scriptResult{}
	var hash []byte

	switch {
	case "" != c.String("address"):
		version, h, err := script.AddressToPubKeyHash(c.String("address"))
		if nil != err {
			return err
		}
		result.Version = &version
		hash = h

	case "" != c.String("public-key"):
		publicKey, err := hexOption(c, "public-key")
		if nil != err {
			return err
		}
		hash = script.Hash160(publicKey)

	default:
		h, err := hexOption(c, "hash")
		if nil != err {
			return err
		}
		hash = h
	}

	s, err := script.PubKeyHashToScript(hash)
	if nil != err {
		return err
	}
	result.PubKeyHash = hex.EncodeToString(hash)
	result.Script = hex.EncodeToString(s)

	return printJson(m.w, result)
}

type addressResult struct {
	Address  interface{} `json:"address"`
	Packed   string      `json:"packed"`
	Decimal  string      `json:"decimal"`
	Checksum string      `json:"checksum"`
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	peer := c.String("peer")
	if "" == peer {
		return ErrMissingOption
	}
	host, port, err := util.CanonicalIPandPort(peer)
	if nil != err {
		return err
	}

	address := wire.Map{
		"services": c.Uint64("services"),
		"address":  host,
		"port":     port,
	}
	packed, err := wire.Pack(message.Address, address)
	if nil != err {
		return err
	}
	r, err := wire.Unpack(message.Address, packed)
	if nil != err {
		return err
	}

	checksum := message.Checksum(packed)
	return printJson(m.w, addressResult{
		Address:  jsonValue(r),
		Packed:   hex.EncodeToString(packed),
		Decimal:  util.DecimalBytes(packed),
		Checksum: hex.EncodeToString(checksum[:]),
	})
}
