// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrChecksumMismatch        = InvalidError("checksum mismatch")
	ErrConfigurationNotTable   = InvalidError("configuration did not return a table")
	ErrDuplicateEnumMapping    = InvalidError("duplicate value in enumeration mapping")
	ErrDuplicateField          = RecordError("duplicate field name")
	ErrEarlyEnd                = LengthError("buffer ended before value was complete")
	ErrEmptyPackedData         = InvalidError("packed data is empty")
	ErrInvalidAddressChecksum  = InvalidError("invalid address checksum")
	ErrInvalidAddressLength    = LengthError("invalid address length")
	ErrInvalidBase58           = InvalidError("invalid base58 text")
	ErrInvalidBitWidth         = InvalidError("bit width must be a positive multiple of 8")
	ErrInvalidEndianness       = InvalidError("invalid endianness")
	ErrInvalidHex              = InvalidError("invalid hex text")
	ErrInvalidIPAddress        = InvalidError("invalid IP address")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidPortNumber       = InvalidError("invalid port number")
	ErrInvalidPubKeyHashLength = LengthError("invalid public key hash length")
	ErrInvalidWitnessFlag      = InvalidError("invalid witness flag")
	ErrLateEnd                 = LengthError("unparsed data after value")
	ErrLengthMismatch          = LengthError("fixed length string has incorrect length")
	ErrListMultiplicity        = InvalidError("list length is not a multiple of its multiplicity")
	ErrMalformedAddressText    = InvalidError("malformed address text")
	ErrMissingField            = RecordError("missing field")
	ErrNonCanonicalEncoding    = InvalidError("varint not canonically packed")
	ErrNotInitialised          = NotFoundError("not initialised")
	ErrOutOfRange              = InvalidError("integer value out of range")
	ErrReservedSentinelUsed    = InvalidError("sentinel value is reserved")
	ErrUnknownCommand          = NotFoundError("unknown command")
	ErrUnknownEnumValue        = NotFoundError("value not in enumeration mapping")
	ErrUnknownField            = RecordError("unknown field")
	ErrVectorMismatch          = ProcessError("reference vector mismatch")
	ErrWitnessCountMismatch    = InvalidError("witness count does not match input count")
	ErrWrongValueType          = RecordError("value has wrong type for codec")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
