// Copyright (c) 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eosecc

import (
	"errors"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrInvalidKey, "ErrInvalidKey"},
		{ErrInvalidDigest, "ErrInvalidDigest"},
		{ErrInvalidRecoveryPoint, "ErrInvalidRecoveryPoint"},
		{ErrNoRecoveryFactor, "ErrNoRecoveryFactor"},
		{ErrNonceExhausted, "ErrNonceExhausted"},
		{ErrEntropyUnavailable, "ErrEntropyUnavailable"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		invalidKey("checksum mismatch"),
		"checksum mismatch",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrInvalidKey == ErrInvalidKey",
		err:       ErrInvalidKey,
		target:    ErrInvalidKey,
		wantMatch: true,
		wantAs:    ErrInvalidKey,
	}, {
		name:      "Error.ErrInvalidKey == ErrInvalidKey",
		err:       invalidKey(""),
		target:    ErrInvalidKey,
		wantMatch: true,
		wantAs:    ErrInvalidKey,
	}, {
		name:      "Error.ErrInvalidKey == Error.ErrInvalidKey",
		err:       invalidKey("version mismatch"),
		target:    invalidKey("version mismatch"),
		wantMatch: true,
		wantAs:    ErrInvalidKey,
	}, {
		name:      "ErrNoRecoveryFactor != ErrInvalidKey",
		err:       ErrNoRecoveryFactor,
		target:    ErrInvalidKey,
		wantMatch: false,
		wantAs:    ErrNoRecoveryFactor,
	}, {
		name:      "Error.ErrInvalidRecoveryPoint != ErrInvalidKey",
		err:       makeError(ErrInvalidRecoveryPoint, ""),
		target:    ErrInvalidKey,
		wantMatch: false,
		wantAs:    ErrInvalidRecoveryPoint,
	}, {
		name:      "Error.ErrNonceExhausted != Error.ErrEntropyUnavailable",
		err:       makeError(ErrNonceExhausted, ""),
		target:    makeError(ErrEntropyUnavailable, ""),
		wantMatch: false,
		wantAs:    ErrNonceExhausted,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error code can be unwrapped and is the expected
		// code.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error code", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error code -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
