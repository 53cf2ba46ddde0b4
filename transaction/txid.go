// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/bitmark-inc/p2pwire/wire"
)

// TxID - double SHA256 of the legacy layout
//
// witness data never contributes, so a segwit transaction has the
// same id as its stripped form
func TxID(tx interface{}) (chainhash.Hash, error) {
	packed, err := wire.Pack(Legacy, tx)
	if nil != err {
		return chainhash.Hash{}, err
	}
	return chainhash.DoubleHashH(packed), nil
}

// WTxID - double SHA256 of the full Codec layout
func WTxID(tx interface{}) (chainhash.Hash, error) {
	packed, err := wire.Pack(Codec, tx)
	if nil != err {
		return chainhash.Hash{}, err
	}
	return chainhash.DoubleHashH(packed), nil
}
