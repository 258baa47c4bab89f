package ecckd

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// NewMnemonic returns a fresh BIP39 english mnemonic carrying bits of
// entropy.  bits must be a multiple of 32 in [128, 256].
func NewMnemonic(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEntropy, err)
	}
	return bip39.NewMnemonic(entropy)
}

// IsMnemonicValid reports whether mnemonic is a BIP39 english mnemonic with a
// correct checksum.
func IsMnemonicValid(mnemonic string) bool {
	return bip39.IsMnemonicValid(normalizeMnemonic(mnemonic))
}

// FromMnemonic returns the master node for a BIP39 mnemonic and optional
// passphrase.
func FromMnemonic(mnemonic, passphrase string) (*ExtendedKey, error) {
	mnemonic = normalizeMnemonic(mnemonic)
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	return FromBitcoinSeed(bip39.NewSeed(mnemonic, passphrase))
}

func normalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(strings.ToLower(mnemonic)), " ")
}
