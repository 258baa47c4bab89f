package eosecc

import (
	"crypto/sha256"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// TestGenerateNonce ensures nonces are deterministic per attempt, that the
// returned pair matches the nonce and that attempts perturb the nonce.
func TestGenerateNonce(t *testing.T) {
	priv, err := ParsePrivateKey(testWIF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := &priv.key.Key
	digest := sha256.Sum256([]byte("message 0"))
	var e secp256k1.ModNScalar
	e.SetByteSlice(digest[:])

	first, err := generateNonce(d, digest[:], 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := generateNonce(d, digest[:], 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.k.Equals(&again.k) || !first.r.Equals(&again.r) ||
		!first.s.Equals(&again.s) {
		t.Fatalf("nonce generation is not deterministic")
	}

	second, err := generateNonce(d, digest[:], 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.k.Equals(&second.k) {
		t.Fatalf("attempt did not perturb the nonce")
	}

	// The first attempt for this digest is not canonical, which is why the
	// signature vector for it needs the second attempt.
	s := first.s
	if s.IsOverHalfOrder() {
		s.Negate()
	}
	if isCanonical(&first.r) && isCanonical(&s) {
		t.Errorf("first attempt unexpectedly canonical")
	}

	for i, res := range []*nonceResult{first, second} {
		// r must be the x coordinate of k·G reduced mod n.
		var R secp256k1.JacobianPoint
		secp256k1.ScalarBaseMultNonConst(&res.k, &R)
		R.ToAffine()
		var wantR secp256k1.ModNScalar
		wantR.SetBytes(R.X.Bytes())
		if !res.r.Equals(&wantR) {
			t.Errorf("#%d: r does not match k·G", i)
		}

		// s·k must equal e + d·r.
		lhs := new(secp256k1.ModNScalar).Mul2(&res.s, &res.k)
		rhs := new(secp256k1.ModNScalar).Mul2(d, &res.r).Add(&e)
		if !lhs.Equals(rhs) {
			t.Errorf("#%d: s does not satisfy s·k = e + d·r", i)
		}
	}
}

// TestSignWithNonceRejects ensures out of range nonce candidates are
// rejected.
func TestSignWithNonceRejects(t *testing.T) {
	priv, err := ParsePrivateKey(testWIF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var e secp256k1.ModNScalar
	e.SetInt(1)

	candidates := map[string][]byte{
		"zero":  make([]byte, 32),
		"order": curveParams.N.Bytes(),
	}
	for name, c := range candidates {
		if _, ok := signWithNonce(&priv.key.Key, &e, c); ok {
			t.Errorf("%s: candidate accepted", name)
		}
	}

	one := make([]byte, 32)
	one[31] = 1
	res, ok := signWithNonce(&priv.key.Key, &e, one)
	if !ok {
		t.Fatalf("nonce one rejected")
	}
	var gx secp256k1.ModNScalar
	gx.SetBytes(generator.X.Bytes())
	if !res.r.Equals(&gx) {
		t.Errorf("r for nonce one is not G.x")
	}
}
