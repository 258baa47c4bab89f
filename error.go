// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eosecc

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidKey is returned for every structurally invalid key or
	// signature input: bad prefix, checksum mismatch, wrong decoded length,
	// out-of-range scalar, malformed recovery byte, unmatched or ambiguous
	// format and points that are not on the curve.
	ErrInvalidKey = ErrorKind("ErrInvalidKey")

	// ErrInvalidDigest is returned when a digest passed for signing or
	// recovery is not exactly 32 bytes.
	ErrInvalidDigest = ErrorKind("ErrInvalidDigest")

	// ErrInvalidRecoveryPoint is returned when the recovery id and R value of
	// a signature do not describe a point of the secp256k1 group.
	ErrInvalidRecoveryPoint = ErrorKind("ErrInvalidRecoveryPoint")

	// ErrNoRecoveryFactor is returned when none of the four recovery ids
	// reproduces the signing key.  This indicates a bug, not bad input.
	ErrNoRecoveryFactor = ErrorKind("ErrNoRecoveryFactor")

	// ErrNonceExhausted is returned when the deterministic nonce search or the
	// canonical signature search exceeds its iteration ceiling.
	ErrNonceExhausted = ErrorKind("ErrNonceExhausted")

	// ErrEntropyUnavailable is returned when the system secure random source
	// cannot provide entropy for key generation.
	ErrEntropyUnavailable = ErrorKind("ErrEntropyUnavailable")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to key or signature handling.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// invalidKey is shorthand for the most common error produced by the parsers.
func invalidKey(desc string) Error {
	return makeError(ErrInvalidKey, desc)
}
