package eosecc

import (
	"math/big"
	"math/bits"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var (
	curveParams = secp256k1.Params()

	// generator is G in affine Jacobian form (Z = 1).
	generator = func() secp256k1.JacobianPoint {
		var one secp256k1.ModNScalar
		one.SetInt(1)
		var g secp256k1.JacobianPoint
		secp256k1.ScalarBaseMultNonConst(&one, &g)
		g.ToAffine()
		return g
	}()
)

func isInfinity(p *secp256k1.JacobianPoint) bool {
	return (p.X.IsZero() && p.Y.IsZero()) || p.Z.IsZero()
}

// scalarBitLen returns the number of significant bits of a big-endian
// 256-bit value.
func scalarBitLen(b *[32]byte) int {
	for i, v := range b {
		if v != 0 {
			return (len(b)-i-1)*8 + bits.Len8(v)
		}
	}
	return 0
}

// scalarBit returns bit i (0 is the least significant) of a big-endian
// 256-bit value.
func scalarBit(b *[32]byte, i int) bool {
	return b[len(b)-1-i/8]>>(uint(i)%8)&1 == 1
}

// shamirMult computes a·P + b·Q in a single double-and-add pass over the
// shared bit length of a and b, adding P, Q or the precomputed P+Q at each
// step.
func shamirMult(a *secp256k1.ModNScalar, P *secp256k1.JacobianPoint,
	b *secp256k1.ModNScalar, Q *secp256k1.JacobianPoint,
	result *secp256k1.JacobianPoint) {

	var PQ secp256k1.JacobianPoint
	secp256k1.AddNonConst(P, Q, &PQ)

	aBytes, bBytes := a.Bytes(), b.Bytes()
	n := scalarBitLen(&aBytes)
	if l := scalarBitLen(&bBytes); l > n {
		n = l
	}

	// The zero value is the point at infinity.
	var acc, tmp secp256k1.JacobianPoint
	for i := n - 1; i >= 0; i-- {
		secp256k1.DoubleNonConst(&acc, &tmp)
		acc = tmp

		var addend *secp256k1.JacobianPoint
		switch aBit, bBit := scalarBit(&aBytes, i), scalarBit(&bBytes, i); {
		case aBit && bBit:
			addend = &PQ
		case aBit:
			addend = P
		case bBit:
			addend = Q
		default:
			continue
		}
		secp256k1.AddNonConst(&acc, addend, &tmp)
		acc = tmp
	}
	result.Set(&acc)
}

// hasGroupOrder reports whether n·R is the point at infinity, computed as
// (n-1)·R + R since n itself is not representable modulo n.
func hasGroupOrder(R *secp256k1.JacobianPoint) bool {
	var nMinusOne secp256k1.ModNScalar
	nMinusOne.SetInt(1).Negate()

	var p, sum secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&nMinusOne, R, &p)
	secp256k1.AddNonConst(&p, R, &sum)
	return isInfinity(&sum)
}

// tryRecover reconstructs the public key for recovery id 0..3 from e, r and
// s:
//
//	R = point with x = r (+ n when id >= 2) and y parity id & 1
//	Q = (s·r^-1)·R + (-e·r^-1)·G
func tryRecover(e, r, s *secp256k1.ModNScalar, id int) (*secp256k1.PublicKey, error) {
	isYOdd := id&1 == 1
	isSecondKey := id>>1 == 1

	rBytes := r.Bytes()
	x := new(big.Int).SetBytes(rBytes[:])
	if isSecondKey {
		x.Add(x, curveParams.N)
	}
	if x.Cmp(curveParams.P) >= 0 {
		return nil, makeError(ErrInvalidRecoveryPoint, "invalid recovery "+
			"point: x coordinate is not less than the field prime")
	}

	var fx, fy secp256k1.FieldVal
	fx.SetByteSlice(x.Bytes())
	if !secp256k1.DecompressY(&fx, isYOdd, &fy) {
		return nil, makeError(ErrInvalidRecoveryPoint, "invalid recovery "+
			"point: x coordinate is not on the curve")
	}
	fy.Normalize()

	var one secp256k1.FieldVal
	one.SetInt(1)
	R := secp256k1.MakeJacobianPoint(&fx, &fy, &one)
	if !hasGroupOrder(&R) {
		return nil, makeError(ErrInvalidRecoveryPoint, "invalid recovery "+
			"point: n·R is not the point at infinity")
	}

	rInv := new(secp256k1.ModNScalar).InverseValNonConst(r)
	u1 := new(secp256k1.ModNScalar).Mul2(s, rInv)
	u2 := new(secp256k1.ModNScalar).NegateVal(e).Mul(rInv)

	var Q secp256k1.JacobianPoint
	shamirMult(u1, &R, u2, &generator, &Q)
	if isInfinity(&Q) {
		return nil, makeError(ErrInvalidRecoveryPoint, "invalid recovery "+
			"point: recovered key is the point at infinity")
	}
	Q.ToAffine()
	return secp256k1.NewPublicKey(&Q.X, &Q.Y), nil
}

// calcRecoveryID returns the first recovery id whose recovered key equals
// expected.
func calcRecoveryID(e, r, s *secp256k1.ModNScalar, expected *PublicKey) (int, error) {
	for id := 0; id < 4; id++ {
		key, err := tryRecover(e, r, s, id)
		if err != nil {
			continue
		}
		if key.IsEqual(expected.key) {
			return id, nil
		}
	}
	return 0, makeError(ErrNoRecoveryFactor, "unable to find valid recovery factor")
}
