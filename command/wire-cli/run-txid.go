// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/p2pwire/merkle"
	"github.com/bitmark-inc/p2pwire/transaction"
	"github.com/bitmark-inc/p2pwire/wire"
)

type txIDResult struct {
	TxID   string `json:"txid"`
	WTxID  string `json:"wtxid"`
	Segwit bool   `json:"segwit"`
	Size   int    `json:"size"`
}

func runTxID(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed, err := hexOption(c, "hex")
	if nil != err {
		return err
	}

	tx, err := wire.Unpack(transaction.Codec, packed)
	if nil != err {
		return err
	}

	id, err := transaction.TxID(tx)
	if nil != err {
		return err
	}
	wid, err := transaction.WTxID(tx)
	if nil != err {
		return err
	}

	return printJson(m.w, txIDResult{
		TxID:   id.String(),
		WTxID:  wid.String(),
		Segwit: transaction.IsSegwit(tx),
		Size:   len(packed),
	})
}

func runMerkle(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txIds := c.StringSlice("txid")
	if 0 == len(txIds) {
		return ErrMissingOption
	}

	ids := make([]chainhash.Hash, len(txIds))
	for i, s := range txIds {
		h, err := chainhash.NewHashFromStr(s)
		if nil != err {
			return err
		}
		ids[i] = *h
	}

	root := merkle.Root(ids)
	return printJson(m.w, map[string]interface{}{
		"count": len(ids),
		"root":  root.String(),
	})
}
