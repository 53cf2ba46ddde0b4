// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/p2pwire/fault"
)

// common errors - keep in alphabetic order
const (
	ErrConflictingOptions = fault.InvalidError("only one of the alternative options may be given")
	ErrMissingOption      = fault.InvalidError("required option is missing")
)
