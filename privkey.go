package eosecc

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PrivateKey is a secp256k1 scalar in [1, n-1] along with the textual family
// it was read from.  It is immutable.
type PrivateKey struct {
	key    secp256k1.PrivateKey
	format KeyFormat
}

// PrivateKeyFromBytes returns the private key for a 32-byte big-endian
// scalar.  The scalar must be in [1, n-1].
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	return privateKeyFromBytes(b, FormatLegacy)
}

func privateKeyFromBytes(b []byte, format KeyFormat) (*PrivateKey, error) {
	if len(b) != PrivateKeyLen {
		return nil, invalidKey(fmt.Sprintf("private key is %d bytes, "+
			"expected %d", len(b), PrivateKeyLen))
	}
	priv := &PrivateKey{format: format}
	if overflow := priv.key.Key.SetByteSlice(b); overflow {
		return nil, invalidKey("private key is not less than the group order")
	}
	if priv.key.Key.IsZero() {
		return nil, invalidKey("private key is zero")
	}
	return priv, nil
}

// ParsePrivateKey parses a PVT_K1_ or WIF private key.
func ParsePrivateKey(s string) (*PrivateKey, error) {
	ks, err := parseKeyString(s, "private key", matchModernPrivate, wifMatcher)
	if err != nil {
		return nil, err
	}
	return privateKeyFromKeyString(ks)
}

func privateKeyFromKeyString(ks *keyString) (*PrivateKey, error) {
	format := FormatLegacy
	if ks.kind == kindModernPrivate {
		if err := requireK1(ks); err != nil {
			return nil, err
		}
		format = FormatModern
	}
	return privateKeyFromBytes(ks.payload, format)
}

// IsValidPrivateKey reports whether s parses as a private key.
func IsValidPrivateKey(s string) bool {
	_, err := ParsePrivateKey(s)
	return err == nil
}

// PrivateKeyFromSeed derives a private key from SHA256(seed).  The same seed
// always yields the same key, so this must not be used with low entropy
// secrets.
func PrivateKeyFromSeed(seed string) (*PrivateKey, error) {
	sum := sha256.Sum256([]byte(seed))
	return PrivateKeyFromBytes(sum[:])
}

// GeneratePrivateKey creates a private key from the system secure random
// source.
func GeneratePrivateKey() (*PrivateKey, error) {
	return GeneratePrivateKeyFrom(rand.Reader)
}

// GeneratePrivateKeyFrom creates a private key from three 32-bit draws of r,
// hashed with SHA-256.  A failing reader is reported as ErrEntropyUnavailable;
// there is no fallback source.
func GeneratePrivateKeyFrom(r io.Reader) (*PrivateKey, error) {
	var entropy [12]byte
	for i := 0; i < 3; i++ {
		var draw uint32
		if err := binary.Read(r, binary.BigEndian, &draw); err != nil {
			return nil, makeError(ErrEntropyUnavailable,
				fmt.Sprintf("secure random source failed: %v", err))
		}
		binary.BigEndian.PutUint32(entropy[i*4:], draw)
	}
	sum := sha256.Sum256(entropy[:])
	return PrivateKeyFromBytes(sum[:])
}

// PublicKey computes G·d.  The textual form of the result follows the form
// of the private key.
func (k *PrivateKey) PublicKey() (*PublicKey, error) {
	if k.key.Key.IsZero() {
		return nil, invalidKey("private key is zero")
	}
	var point secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&k.key.Key, &point)
	if point.Z.IsZero() {
		return nil, invalidKey("public key is the point at infinity")
	}
	point.ToAffine()
	return newPublicKey(secp256k1.NewPublicKey(&point.X, &point.Y), k.format), nil
}

// Format returns the textual form String produces.
func (k *PrivateKey) Format() KeyFormat {
	return k.format
}

// String returns the key in the form it was constructed from: WIF for legacy
// keys, PVT_K1_ for modern keys.
func (k *PrivateKey) String() string {
	if k.format == FormatModern {
		return k.ModernString()
	}
	return k.WIF()
}

// WIF returns the Wallet Import Format encoding, without compression flag.
func (k *PrivateKey) WIF() string {
	return encodeWIF(k.Bytes())
}

// ModernString returns the PVT_K1_ encoding.
func (k *PrivateKey) ModernString() string {
	return encodeModern(tagPrivate, KeyTypeK1, k.Bytes())
}

// Bytes returns the 32-byte big-endian scalar.
func (k *PrivateKey) Bytes() []byte {
	b := k.key.Key.Bytes()
	return b[:]
}

// Key returns a copy of the underlying secp256k1 private key.
func (k *PrivateKey) Key() *secp256k1.PrivateKey {
	return secp256k1.NewPrivateKey(&k.key.Key)
}

// ChildKey derives SHA256(d || name) as a new private key of the same format.
func (k *PrivateKey) ChildKey(name string) (*PrivateKey, error) {
	h := sha256.New()
	h.Write(k.Bytes())
	h.Write([]byte(name))
	return privateKeyFromBytes(h.Sum(nil), k.format)
}
