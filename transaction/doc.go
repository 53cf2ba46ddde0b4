// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - coin transaction wire layouts
//
// two layouts share one wire position: the VarInt that follows the
// version is either the legacy input count or, when zero, the segwit
// marker.  Codec reads that VarInt and branches, producing one of two
// record shapes:
//
//   legacy: version, tx_ins, tx_outs, lock_time
//   segwit: version, marker, flag, tx_ins, tx_outs, witness, lock_time
//
// a consequence is that a legacy transaction with no inputs cannot be
// told apart from a segwit one; such bytes are read on the segwit
// branch and normally fail with fault.ErrInvalidWitnessFlag
package transaction
