package main

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ModChain/eosecc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// digestFlags selects what is signed: the SHA-256 of --data or a
// precomputed --digest.
type digestFlags struct {
	data   string
	digest string
}

func (d *digestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&d.data, "data", "", "message to hash with SHA-256")
	cmd.Flags().StringVar(&d.digest, "digest", "", "hex encoded 32-byte digest")
	cmd.MarkFlagsOneRequired("data", "digest")
	cmd.MarkFlagsMutuallyExclusive("data", "digest")
}

func (d *digestFlags) resolve() ([]byte, error) {
	if d.digest == "" {
		sum := sha256.Sum256([]byte(d.data))
		return sum[:], nil
	}
	b, err := hex.DecodeString(d.digest)
	if err != nil {
		return nil, fmt.Errorf("decode digest: %w", err)
	}
	if len(b) != sha256.Size {
		return nil, fmt.Errorf("digest is %d bytes, expected %d", len(b), sha256.Size)
	}
	return b, nil
}

func (a *app) signCmd() *cobra.Command {
	var (
		key string
		df  digestFlags
	)
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message or digest",
		Long: `Produce a canonical SIG_K1_ signature.

Examples:
  eoskey sign --key 5KQw... --data "hello"
  eoskey sign --key PVT_K1_... --digest 3a6eb079...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := eosecc.ParsePrivateKey(key)
			if err != nil {
				return fmt.Errorf("parse private key: %w", err)
			}
			digest, err := df.resolve()
			if err != nil {
				return err
			}
			sig, err := priv.SignDigest(digest)
			if err != nil {
				return fmt.Errorf("sign: %w", err)
			}
			a.log.Debug("signed digest", zap.String("digest", hex.EncodeToString(digest)),
				zap.Int("recovery_id", sig.RecoveryID()))
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "private key to sign with")
	_ = cmd.MarkFlagRequired("key")
	df.register(cmd)
	return cmd
}

var errBadSignature = errors.New("signature does not verify")

func (a *app) verifyCmd() *cobra.Command {
	var (
		pubStr string
		sigStr string
		df     digestFlags
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature against a public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := eosecc.ParsePublicKeyWithPrefix(pubStr, a.cfg.PublicPrefix)
			if err != nil {
				return fmt.Errorf("parse public key: %w", err)
			}
			sig, err := eosecc.ParseSignature(sigStr)
			if err != nil {
				return fmt.Errorf("parse signature: %w", err)
			}
			digest, err := df.resolve()
			if err != nil {
				return err
			}
			if !sig.Verify(digest, pub) {
				return errBadSignature
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signature is valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&pubStr, "pub", "", "public key of the signer")
	cmd.Flags().StringVar(&sigStr, "sig", "", "SIG_K1_ signature")
	_ = cmd.MarkFlagRequired("pub")
	_ = cmd.MarkFlagRequired("sig")
	df.register(cmd)
	return cmd
}

func (a *app) recoverCmd() *cobra.Command {
	var (
		sigStr string
		modern bool
		df     digestFlags
	)
	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Recover the signer's public key from a signature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := eosecc.ParseSignature(sigStr)
			if err != nil {
				return fmt.Errorf("parse signature: %w", err)
			}
			digest, err := df.resolve()
			if err != nil {
				return err
			}
			pub, err := sig.Recover(digest)
			if err != nil {
				return fmt.Errorf("recover: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatPublic(pub, a.outputFormat(modern)))
			return nil
		},
	}
	cmd.Flags().StringVar(&sigStr, "sig", "", "SIG_K1_ signature")
	cmd.Flags().BoolVar(&modern, "modern", false, "print a PUB_K1_ key")
	_ = cmd.MarkFlagRequired("sig")
	df.register(cmd)
	return cmd
}
