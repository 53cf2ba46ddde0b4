// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package merkle - coin block merkle tree over transaction ids
package merkle

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// FullMerkleTree - compute minimum merkle root from a set of transaction ids
//
// structure is:
//   1. N * transaction digests
//   2. level 1..m digests
//   3. merkle root digest
//
// each node is the double SHA256 of its two children; an odd node at
// the end of a level is paired with itself
func FullMerkleTree(txIds []chainhash.Hash) []chainhash.Hash {

	// compute length of ids + all tree levels including root
	idCount := len(txIds)

	totalLength := 1 // all ids + space for the final root
	for n := idCount; n > 1; n = (n + 1) / 2 {
		totalLength += n
	}

	// add initial ids
	tree := make([]chainhash.Hash, totalLength)
	copy(tree[:], txIds)

	n := idCount
	j := 0
	buffer := make([]byte, 2*chainhash.HashSize)
	for workLength := idCount; workLength > 1; workLength = (workLength + 1) / 2 {
		for i := 0; i < workLength; i += 2 {
			k := j + 1
			if i+1 == workLength {
				k = j // compensate for odd number
			}
			copy(buffer, tree[j][:])
			copy(buffer[chainhash.HashSize:], tree[k][:])
			tree[n] = chainhash.DoubleHashH(buffer)
			n += 1
			j = k + 1
		}
	}
	return tree
}

// Root - the merkle root, a zero hash for no ids
func Root(txIds []chainhash.Hash) chainhash.Hash {
	switch len(txIds) {
	case 0:
		return chainhash.Hash{}
	case 1:
		return txIds[0]
	}
	tree := FullMerkleTree(txIds)
	return tree[len(tree)-1]
}
