// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eosecc

import (
	"bytes"
	"testing"
)

func TestGenerateSharedSecret(t *testing.T) {
	privKey1, err := GeneratePrivateKey()
	if err != nil {
		t.Errorf("private key generation error: %s", err)
		return
	}
	privKey2, err := GeneratePrivateKey()
	if err != nil {
		t.Errorf("private key generation error: %s", err)
		return
	}
	pubKey1, err := privKey1.PublicKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pubKey2, err := privKey2.PublicKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	secret1 := GenerateSharedSecret(privKey1, pubKey2)
	secret2 := GenerateSharedSecret(privKey2, pubKey1)
	if !bytes.Equal(secret1, secret2) {
		t.Errorf("ECDH failed, secrets mismatch - first: %x, second: %x",
			secret1, secret2)
	}

	shared1 := privKey1.SharedSecret(pubKey2)
	shared2 := privKey2.SharedSecret(pubKey1)
	if len(shared1) != 64 || !bytes.Equal(shared1, shared2) {
		t.Errorf("shared secrets mismatch - first: %x, second: %x", shared1,
			shared2)
	}

	ecdh, err := privKey1.ECDH(pubKey2)
	if err != nil || !bytes.Equal(ecdh, secret1) {
		t.Errorf("ECDH alias mismatch: %v", err)
	}
}
