package main

import (
	"fmt"

	"github.com/ModChain/eosecc/ecckd"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) deriveCmd() *cobra.Command {
	var (
		mnemonic   string
		passphrase string
		index      uint32
		path       string
		modern     bool
		words      int
	)
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive a key pair from a BIP39 mnemonic",
		Long: `Derive a key pair from a BIP39 mnemonic along m/44'/194'/0'/0/INDEX,
or along --path.  Without --mnemonic a new mnemonic is generated and printed.

Examples:
  eoskey derive --words 24
  eoskey derive --mnemonic "abandon ... about" --index 3
  eoskey derive --mnemonic "abandon ... about" --path "m/44'/194'/1'/0/0"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if mnemonic == "" {
				if words%3 != 0 {
					return fmt.Errorf("invalid word count %d", words)
				}
				var err error
				mnemonic, err = ecckd.NewMnemonic(words / 3 * 32)
				if err != nil {
					return fmt.Errorf("generate mnemonic: %w", err)
				}
				fmt.Fprintf(out, "Mnemonic:    %s\n", mnemonic)
			}

			keyPath := ecckd.EOSPath(index)
			if path != "" {
				var err error
				if keyPath, err = ecckd.ParsePath(path); err != nil {
					return err
				}
			}

			master, err := ecckd.FromMnemonic(mnemonic, passphrase)
			if err != nil {
				return err
			}
			ek, err := master.Derive(keyPath)
			if err != nil {
				return fmt.Errorf("derive %s: %w", ecckd.FormatPath(keyPath), err)
			}
			priv, err := ek.PrivateKey()
			if err != nil {
				return err
			}
			pub, err := ek.PublicKey()
			if err != nil {
				return err
			}

			a.log.Debug("derived key", zap.String("path", ecckd.FormatPath(keyPath)),
				zap.Uint8("depth", ek.Depth))
			format := a.outputFormat(modern)
			fmt.Fprintf(out, "Path:        %s\nPrivate key: %s\nPublic key:  %s\n",
				ecckd.FormatPath(keyPath), formatPrivate(priv, format),
				a.formatPublic(pub, format))
			return nil
		},
	}
	cmd.Flags().StringVar(&mnemonic, "mnemonic", "", "BIP39 mnemonic")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "optional BIP39 passphrase")
	cmd.Flags().Uint32Var(&index, "index", 0, "account index in m/44'/194'/0'/0/INDEX")
	cmd.Flags().StringVar(&path, "path", "", "explicit derivation path, overrides --index")
	cmd.Flags().BoolVar(&modern, "modern", false, "print PVT_K1_/PUB_K1_ keys")
	cmd.Flags().IntVar(&words, "words", 12, "mnemonic length when generating one: 12, 15, 18, 21 or 24")
	cmd.MarkFlagsMutuallyExclusive("index", "path")
	return cmd
}
