package ecckd

import (
	"encoding/binary"
	"fmt"

	"github.com/ModChain/eosecc"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// HardenedBit marks a child index as hardened.
const HardenedBit uint32 = 0x80000000

const (
	chainCodeLen = 32
	maxDepth     = 0xff
)

// ExtendedKey is a BIP32 node: a private scalar or compressed public point
// together with the chain code needed to derive its children.
type ExtendedKey struct {
	Version     KeyVersion
	Depth       uint8
	Fingerprint [4]byte // first four bytes of the parent's key identifier
	ChildNumber uint32  // index this node was derived at, zero for a master
	KeyData     []byte  // 32-byte scalar when private, 33-byte point when public
	ChainCode   []byte
}

// FromBitcoinSeed returns the master node for seed under the "Bitcoin seed"
// master secret, which EOS wallets share with bitcoin ones.
func FromBitcoinSeed(seed []byte) (*ExtendedKey, error) {
	return FromSeed(seed, []byte("Bitcoin seed"))
}

// FromSeed returns the master node for a 16 to 64 byte seed.
func FromSeed(seed, masterSecret []byte) (*ExtendedKey, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, ErrInvalidSeed
	}
	key, chainCode, err := hmacCKD(seed, masterSecret)
	if err != nil {
		return nil, ErrInvalidSeed
	}
	scalar := key.Bytes()
	return &ExtendedKey{
		Version:   BitcoinMainnetPrivate,
		KeyData:   scalar[:],
		ChainCode: chainCode,
	}, nil
}

// FromPublicKey returns a public master node for pub with the given chain
// code.  Only non-hardened children can be derived from it.
func FromPublicKey(pub *eosecc.PublicKey, chainCode []byte) (*ExtendedKey, error) {
	if pub == nil {
		return nil, ErrInvalidKey
	}
	if len(chainCode) != chainCodeLen {
		return nil, ErrInvalidChainCode
	}
	return &ExtendedKey{
		Version:   BitcoinMainnetPublic,
		KeyData:   pub.Bytes(),
		ChainCode: append([]byte(nil), chainCode...),
	}, nil
}

func (k *ExtendedKey) IsPrivate() bool {
	return k.Version.IsPrivate()
}

// Child returns the node at index i below k.  Private parents give private
// children and public parents give public ones.  Indexes with HardenedBit
// set need the private scalar, so asking a public node for one fails with
// ErrDerivingHardenedFromPublic.
func (k *ExtendedKey) Child(i uint32) (*ExtendedKey, error) {
	child, _, err := k.child(i)
	return child, err
}

// child derives the node at index i and also returns its IL tweak.
func (k *ExtendedKey) child(i uint32) (*ExtendedKey, *secp256k1.ModNScalar, error) {
	if k.Depth == maxDepth {
		return nil, nil, ErrMaxDepthExceeded
	}
	hardened := i&HardenedBit != 0
	if hardened && !k.IsPrivate() {
		return nil, nil, ErrDerivingHardenedFromPublic
	}

	parentPub, err := k.pubKeyBytes()
	if err != nil {
		return nil, nil, err
	}

	// data = 0x00 || ser256(k) || ser32(i) when hardened,
	// serP(K) || ser32(i) otherwise.
	var data [secp256k1.PubKeyBytesLenCompressed + 4]byte
	if hardened {
		copy(data[1:], k.KeyData)
	} else {
		copy(data[:], parentPub)
	}
	binary.BigEndian.PutUint32(data[secp256k1.PubKeyBytesLenCompressed:], i)

	il, chainCode, err := hmacCKD(data[:], k.ChainCode)
	if err != nil {
		return nil, nil, err
	}

	child := &ExtendedKey{
		Version:     k.Version,
		Depth:       k.Depth + 1,
		ChildNumber: i,
		ChainCode:   chainCode,
	}
	copy(child.Fingerprint[:], rmd160sha256(parentPub))

	if k.IsPrivate() {
		// k_i = IL + k_par mod n
		var scalar secp256k1.ModNScalar
		scalar.SetByteSlice(k.KeyData)
		if scalar.Add(il).IsZero() {
			return nil, nil, ErrInvalidKey
		}
		b := scalar.Bytes()
		child.KeyData = b[:]
		return child, il, nil
	}

	// K_i = IL·G + K_par
	parent, err := secp256k1.ParsePubKey(k.KeyData)
	if err != nil {
		return nil, nil, err
	}
	var tweak, parentPoint, sum secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(il, &tweak)
	parent.AsJacobian(&parentPoint)
	secp256k1.AddNonConst(&tweak, &parentPoint, &sum)
	if sum.Z.IsZero() {
		return nil, nil, ErrInvalidKey
	}
	sum.ToAffine()
	child.Version = k.Version.ToPublic()
	child.KeyData = secp256k1.NewPublicKey(&sum.X, &sum.Y).SerializeCompressed()
	return child, il, nil
}

// Derive walks path from k, one Child call per index.
func (k *ExtendedKey) Derive(path []uint32) (*ExtendedKey, error) {
	_, node, err := k.DeriveWithIL(path)
	return node, err
}

// DeriveWithIL derives the key at path and also returns the sum of the IL
// tweaks along the way, so that for a public path the derived public key is
// the parent key plus IL·G.
func (k *ExtendedKey) DeriveWithIL(path []uint32) (*secp256k1.ModNScalar, *ExtendedKey, error) {
	var total secp256k1.ModNScalar
	node := k
	for _, i := range path {
		next, il, err := node.child(i)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: index %d: %w", ErrDerivingChild, i, err)
		}
		total.Add(il)
		node = next
	}
	return &total, node, nil
}

// Public returns the public counterpart of k, or k itself when it is
// already public.
func (k *ExtendedKey) Public() (*ExtendedKey, error) {
	if !k.IsPrivate() {
		return k, nil
	}
	pub, err := k.pubKeyBytes()
	if err != nil {
		return nil, err
	}
	neutered := *k
	neutered.Version = k.Version.ToPublic()
	neutered.KeyData = pub
	return &neutered, nil
}

// PrivateKey returns the EOS private key held by a private extended key.
func (k *ExtendedKey) PrivateKey() (*eosecc.PrivateKey, error) {
	if !k.IsPrivate() {
		return nil, ErrNotPrivate
	}
	return eosecc.PrivateKeyFromBytes(k.KeyData)
}

// PublicKey returns the EOS public key of the extended key.
func (k *ExtendedKey) PublicKey() (*eosecc.PublicKey, error) {
	pub, err := k.pubKeyBytes()
	if err != nil {
		return nil, err
	}
	return eosecc.PublicKeyFromBytes(pub)
}

// pubKeyBytes returns the compressed public key, computing it for private
// nodes.
func (k *ExtendedKey) pubKeyBytes() ([]byte, error) {
	if !k.IsPrivate() {
		return k.KeyData, nil
	}
	var d secp256k1.ModNScalar
	if overflow := d.SetByteSlice(k.KeyData); overflow || d.IsZero() {
		return nil, ErrInvalidKey
	}
	return secp256k1.NewPrivateKey(&d).PubKey().SerializeCompressed(), nil
}
