// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/p2pwire/fault"
)

// test that the codec errors fall in the expected classes
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{fault.ErrAlreadyInitialised, true, false, false, false, false, false},
		{fault.ErrEarlyEnd, false, false, true, false, false, false},
		{fault.ErrLateEnd, false, false, true, false, false, false},
		{fault.ErrLengthMismatch, false, false, true, false, false, false},
		{fault.ErrNonCanonicalEncoding, false, true, false, false, false, false},
		{fault.ErrOutOfRange, false, true, false, false, false, false},
		{fault.ErrReservedSentinelUsed, false, true, false, false, false, false},
		{fault.ErrMalformedAddressText, false, true, false, false, false, false},
		{fault.ErrDuplicateEnumMapping, false, true, false, false, false, false},
		{fault.ErrUnknownEnumValue, false, false, false, true, false, false},
		{fault.ErrVectorMismatch, false, false, false, false, true, false},
		{fault.ErrMissingField, false, false, false, false, false, true},
		{fault.ErrWrongValueType, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

func TestErrorText(t *testing.T) {
	if s := fault.ErrEarlyEnd.Error(); "buffer ended before value was complete" != s {
		t.Errorf("unexpected text: %q", s)
	}
	var err error = fault.ErrLateEnd
	if err != fault.ErrLateEnd {
		t.Errorf("error instances must compare equal")
	}
}

// without Initialise the critical messages go to stdout
func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() { fault.PanicIfError("pack", nil) }, "nil error")
	assert.PanicsWithValue(t, "pack failed with error: buffer ended before value was complete", func() {
		fault.PanicIfError("pack", fault.ErrEarlyEnd)
	}, "error")
}

func TestCriticalf(t *testing.T) {
	assert.NotPanics(t, func() { fault.Criticalf("vector: %q", "version") }, "uninitialised")
}
