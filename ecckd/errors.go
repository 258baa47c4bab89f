package ecckd

import (
	"errors"
)

var (
	ErrInvalidKey                 = errors.New("key is invalid")
	ErrInvalidSeed                = errors.New("seed is invalid")
	ErrDerivingHardenedFromPublic = errors.New("cannot derive a hardened key from public key")
	ErrBadChecksum                = errors.New("bad extended key checksum")
	ErrInvalidKeyLen              = errors.New("serialized extended key length is invalid")
	ErrInvalidChainCode           = errors.New("chain code must be 32 bytes")
	ErrDerivingChild              = errors.New("error deriving child key")
	ErrMaxDepthExceeded           = errors.New("max depth exceeded")
	ErrInvalidPrivateFlag         = errors.New("key private flag does not match version")
	ErrUnknownVersion             = errors.New("unknown extended key version")
	ErrNotPrivate                 = errors.New("extended key is not private")
	ErrInvalidMnemonic            = errors.New("mnemonic is invalid")
	ErrInvalidEntropy             = errors.New("mnemonic entropy size is invalid")
	ErrInvalidPath                = errors.New("derivation path is invalid")
)
