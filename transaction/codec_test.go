// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/p2pwire/fault"
	"github.com/bitmark-inc/p2pwire/script"
	"github.com/bitmark-inc/p2pwire/transaction"
	"github.com/bitmark-inc/p2pwire/wire"
)

const (
	coinbaseScript = "70736a0468860e1a0452389500522cfabe6d6d2b2f33cf8f6291b184f1b291d24d82229463fcec239afea0ee34b4bfc622f62401000000000000004d696e656420627920425443204775696c6420ac1eeeed88"
	payoutHash     = "ca975b00a8c203b8692f5a18d92dc5c2d2ebc57b"

	legacyPacked = "01000000010000000000000000000000000000000000000000000000000000000000000000ffffffff5370736a0468860e1a0452389500522cfabe6d6d2b2f33cf8f6291b184f1b291d24d82229463fcec239afea0ee34b4bfc622f62401000000000000004d696e656420627920425443204775696c6420ac1eeeed88ffffffff013a27412a010000001976a914ca975b00a8c203b8692f5a18d92dc5c2d2ebc57b88ac00000000"
	legacyTxID   = "b53802b2333e828d6532059f46ecf6b313a42d79f97925e457fbbfda45367e5c"

	segwitPacked = "020000000001010000000000000000000000000000000000000000000000000000000000000000ffffffff5370736a0468860e1a0452389500522cfabe6d6d2b2f33cf8f6291b184f1b291d24d82229463fcec239afea0ee34b4bfc622f62401000000000000004d696e656420627920425443204775696c6420ac1eeeed88ffffffff013a27412a010000001976a914ca975b00a8c203b8692f5a18d92dc5c2d2ebc57b88ac020230440202ab00000000"
)

func mustHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.Nil(t, err, "hex: %q", s)
	return b
}

func coinbaseInputs(t *testing.T) []interface{} {
	return []interface{}{
		wire.Map{
			"previous_output": nil,
			"script":          mustHex(t, coinbaseScript),
			"sequence":        nil,
		},
	}
}

func payoutOutputs(t *testing.T) []interface{} {
	s, err := script.PubKeyHashToScript(mustHex(t, payoutHash))
	require.Nil(t, err, "payout script")
	return []interface{}{
		wire.Map{
			"value":  uint64(5003880250),
			"script": s,
		},
	}
}

func legacyTx(t *testing.T) wire.Map {
	return wire.Map{
		"version":   1,
		"tx_ins":    coinbaseInputs(t),
		"tx_outs":   payoutOutputs(t),
		"lock_time": 0,
	}
}

func segwitTx(t *testing.T) wire.Map {
	return wire.Map{
		"version": 2,
		"marker":  0,
		"flag":    1,
		"tx_ins":  coinbaseInputs(t),
		"tx_outs": payoutOutputs(t),
		"witness": []interface{}{
			[]interface{}{
				[]byte{0x30, 0x44},
				[]byte{0x02, 0xab},
			},
		},
		"lock_time": 0,
	}
}

func TestLegacyVector(t *testing.T) {
	packed, err := wire.Pack(transaction.Codec, legacyTx(t))
	require.Nil(t, err, "pack")
	assert.Equal(t, legacyPacked, hex.EncodeToString(packed), "packed bytes")

	legacy, err := wire.Pack(transaction.Legacy, legacyTx(t))
	require.Nil(t, err, "pack legacy")
	assert.Equal(t, packed, legacy, "codec delegates to legacy layout")

	item, err := wire.Unpack(transaction.Codec, packed)
	require.Nil(t, err, "unpack")
	tx := item.(*wire.Record)
	assert.Equal(t, []string{"version", "tx_ins", "tx_outs", "lock_time"}, tx.Names(), "legacy shape")
	assert.False(t, tx.Has("marker"), "no marker")
	assert.False(t, transaction.IsSegwit(tx), "not segwit")
	assert.True(t, tx.Equal(legacyTx(t)), "decoded: %s", tx)

	inputs, err := tx.Get("tx_ins")
	require.Nil(t, err, "tx_ins")
	input := inputs.([]interface{})[0].(*wire.Record)
	previous, _ := input.Get("previous_output")
	sequence, _ := input.Get("sequence")
	assert.Nil(t, previous, "coinbase has no previous output")
	assert.Nil(t, sequence, "final sequence")

	repacked, err := wire.Pack(transaction.Codec, tx)
	require.Nil(t, err, "repack")
	assert.Equal(t, packed, repacked, "round trip")

	id, err := transaction.TxID(tx)
	require.Nil(t, err, "txid")
	assert.Equal(t, legacyTxID, id.String(), "txid")

	wid, err := transaction.WTxID(tx)
	require.Nil(t, err, "wtxid")
	assert.Equal(t, id, wid, "no witness so ids agree")
}

func TestSegwitVector(t *testing.T) {
	packed, err := wire.Pack(transaction.Codec, segwitTx(t))
	require.Nil(t, err, "pack")
	assert.Equal(t, segwitPacked, hex.EncodeToString(packed), "packed bytes")

	item, err := wire.Unpack(transaction.Codec, packed)
	require.Nil(t, err, "unpack")
	tx := item.(*wire.Record)
	assert.Equal(t, transaction.Segwit.Names(), tx.Names(), "segwit shape")
	assert.True(t, transaction.IsSegwit(tx), "segwit")
	assert.True(t, tx.Equal(segwitTx(t)), "decoded: %s", tx)

	repacked, err := wire.Pack(transaction.Codec, tx)
	require.Nil(t, err, "repack")
	assert.Equal(t, packed, repacked, "round trip")
}

func TestSegwitDiffersFromLegacy(t *testing.T) {
	tx := segwitTx(t)

	full, err := wire.Pack(transaction.Codec, tx)
	require.Nil(t, err, "codec")
	stripped, err := wire.Pack(transaction.Legacy, tx)
	require.Nil(t, err, "legacy")

	assert.NotEqual(t, full, stripped, "layouts differ")
	assert.Equal(t, byte(1), stripped[4], "input count follows version")
	assert.Equal(t, []byte{0, 1}, full[4:6], "marker and flag follow version")

	// marker, flag, one stack of two 2 byte items
	assert.Equal(t, len(stripped)+2+7, len(full), "extra bytes")

	id, err := transaction.TxID(tx)
	require.Nil(t, err, "txid")
	wid, err := transaction.WTxID(tx)
	require.Nil(t, err, "wtxid")
	assert.NotEqual(t, id, wid, "witness changes only the wtxid")
}

// the btcd decoder must agree on both layouts and on the hashes
func TestCrossCheckBtcd(t *testing.T) {
	for _, tx := range []wire.Map{legacyTx(t), segwitTx(t)} {
		packed, err := wire.Pack(transaction.Codec, tx)
		require.Nil(t, err, "pack")

		msg := btcwire.MsgTx{}
		err = msg.Deserialize(bytes.NewReader(packed))
		require.Nil(t, err, "btcd deserialize")

		assert.Equal(t, transaction.IsSegwit(tx), msg.HasWitness(), "witness")
		require.Equal(t, 1, len(msg.TxIn), "inputs")
		require.Equal(t, 1, len(msg.TxOut), "outputs")
		assert.Equal(t, int64(5003880250), msg.TxOut[0].Value, "value")
		assert.Equal(t, uint32(transaction.NullSequence), msg.TxIn[0].Sequence, "sequence")
		assert.Equal(t, uint32(transaction.NullIndex), msg.TxIn[0].PreviousOutPoint.Index, "index")

		id, err := transaction.TxID(tx)
		require.Nil(t, err, "txid")
		assert.Equal(t, msg.TxHash(), id, "txid")

		wid, err := transaction.WTxID(tx)
		require.Nil(t, err, "wtxid")
		assert.Equal(t, msg.WitnessHash(), wid, "wtxid")

		var buffer bytes.Buffer
		err = msg.Serialize(&buffer)
		require.Nil(t, err, "btcd serialize")
		assert.Equal(t, packed, buffer.Bytes(), "btcd layout")
	}
}

// a legacy transaction without inputs is read on the segwit branch
func TestZeroInputAmbiguity(t *testing.T) {
	tx := wire.Map{
		"version":   1,
		"tx_ins":    []interface{}{},
		"tx_outs":   []interface{}{},
		"lock_time": 0,
	}
	packed, err := wire.Pack(transaction.Codec, tx)
	require.Nil(t, err, "pack")
	assert.Equal(t, "01000000000000000000", hex.EncodeToString(packed), "packed")

	_, err = wire.Unpack(transaction.Codec, packed)
	assert.Equal(t, fault.ErrInvalidWitnessFlag, err, "misread as segwit")
}

func TestWitnessCountMismatch(t *testing.T) {
	tx := segwitTx(t)
	tx["witness"] = []interface{}{}
	_, err := wire.Pack(transaction.Codec, tx)
	assert.Equal(t, fault.ErrWitnessCountMismatch, err, "no witness for the input")
}

func TestIsSegwit(t *testing.T) {
	testData := []struct {
		tx     wire.Map
		segwit bool
	}{
		{wire.Map{"marker": 0, "flag": 1}, true},
		{wire.Map{"marker": uint64(0), "flag": uint64(2)}, true},
		{wire.Map{"marker": 0, "flag": 0}, false},
		{wire.Map{"marker": 1, "flag": 1}, false},
		{wire.Map{"flag": 1}, false},
		{wire.Map{"marker": 0}, false},
		{wire.Map{"marker": 0, "flag": "1"}, false},
	}
	for i, item := range testData {
		assert.Equal(t, item.segwit, transaction.IsSegwit(item.tx), "%d: %v", i, item.tx)
	}
	assert.False(t, transaction.IsSegwit(42), "not a record")
}

func TestTruncated(t *testing.T) {
	for _, vector := range []string{legacyPacked, segwitPacked} {
		packed := mustHex(t, vector)
		for n := 0; n < len(packed); n += 1 {
			_, err := wire.Unpack(transaction.Codec, packed[:n])
			assert.True(t, fault.IsErrLength(err) || fault.ErrInvalidWitnessFlag == err, "length %d: %v", n, err)
		}
	}
}

func TestPreviousOutputPresent(t *testing.T) {
	tx := legacyTx(t)
	tx["tx_ins"] = []interface{}{
		wire.Map{
			"previous_output": wire.Map{"hash": 1, "index": 0},
			"script":          []byte{},
			"sequence":        0,
		},
	}
	packed, err := wire.Pack(transaction.Codec, tx)
	require.Nil(t, err, "pack")

	item, err := wire.Unpack(transaction.Codec, packed)
	require.Nil(t, err, "unpack")
	assert.True(t, wire.Equal(item, tx), "decoded: %v", item)

	tx["tx_ins"] = []interface{}{
		wire.Map{
			"previous_output": wire.Map{"hash": 0, "index": transaction.NullIndex},
			"script":          []byte{},
			"sequence":        0,
		},
	}
	_, err = wire.Pack(transaction.Codec, tx)
	assert.Equal(t, fault.ErrReservedSentinelUsed, err, "null outpoint as a value")
}
