// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - output script helpers used when building coinbase
// and payout transactions
package script

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"

	"github.com/bitmark-inc/p2pwire/fault"
)

// PubKeyHashLength - size of a hash160 value
const PubKeyHashLength = ripemd160.Size

const checksumLength = 4

// script opcodes
const (
	opDup         = 0x76
	opHash160     = 0xa9
	opEqualVerify = 0x88
	opCheckSig    = 0xac
)

// PubKeyHashToScript - pay to public key hash output script
//
//   OP_DUP OP_HASH160 <20 byte hash> OP_EQUALVERIFY OP_CHECKSIG
func PubKeyHashToScript(hash []byte) ([]byte, error) {
	if PubKeyHashLength != len(hash) {
		return nil, fault.ErrInvalidPubKeyHashLength
	}
	s := make([]byte, 0, PubKeyHashLength+5)
	s = append(s, opDup, opHash160, PubKeyHashLength)
	s = append(s, hash...)
	s = append(s, opEqualVerify, opCheckSig)
	return s, nil
}

// Hash160 - RIPEMD160(SHA256(data))
func Hash160(data []byte) []byte {
	h := ripemd160.New()
	h.Write(chainhash.HashB(data))
	return h.Sum(nil)
}

// AddressToPubKeyHash - decode a base58check address into its version
// byte and public key hash
func AddressToPubKeyHash(address string) (byte, []byte, error) {
	decoded, err := base58.Decode(address)
	if nil != err {
		return 0, nil, fault.ErrInvalidBase58
	}
	if 1+PubKeyHashLength+checksumLength != len(decoded) {
		return 0, nil, fault.ErrInvalidAddressLength
	}

	n := len(decoded) - checksumLength
	checksum := chainhash.DoubleHashB(decoded[:n])
	for i := 0; i < checksumLength; i += 1 {
		if checksum[i] != decoded[n+i] {
			return 0, nil, fault.ErrInvalidAddressChecksum
		}
	}

	hash := make([]byte, PubKeyHashLength)
	copy(hash, decoded[1:n])
	return decoded[0], hash, nil
}

// PubKeyHashToAddress - base58check encoding of version and hash
func PubKeyHashToAddress(version byte, hash []byte) (string, error) {
	if PubKeyHashLength != len(hash) {
		return "", fault.ErrInvalidPubKeyHashLength
	}
	data := make([]byte, 0, 1+PubKeyHashLength+checksumLength)
	data = append(data, version)
	data = append(data, hash...)
	checksum := chainhash.DoubleHashB(data)
	data = append(data, checksum[:checksumLength]...)
	return base58.Encode(data), nil
}
