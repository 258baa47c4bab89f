package main

import (
	"errors"
	"fmt"

	"github.com/ModChain/eosecc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) genCmd() *cobra.Command {
	var (
		seed   string
		modern bool
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a key pair",
		Long: `Generate a new key pair from the system random source, or
deterministically from --seed.

Examples:
  eoskey gen
  eoskey gen --modern
  eoskey gen --seed "correct horse battery staple"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				priv *eosecc.PrivateKey
				err  error
			)
			if cmd.Flags().Changed("seed") {
				priv, err = eosecc.PrivateKeyFromSeed(seed)
			} else {
				priv, err = eosecc.GeneratePrivateKey()
			}
			if err != nil {
				return fmt.Errorf("generate key: %w", err)
			}
			pub, err := priv.PublicKey()
			if err != nil {
				return fmt.Errorf("derive public key: %w", err)
			}

			format := a.outputFormat(modern)
			a.log.Debug("generated key pair", zap.Stringer("format", format),
				zap.Bool("seeded", cmd.Flags().Changed("seed")))
			fmt.Fprintf(cmd.OutOrStdout(), "Private key: %s\nPublic key:  %s\n",
				formatPrivate(priv, format), a.formatPublic(pub, format))
			return nil
		},
	}
	cmd.Flags().StringVar(&seed, "seed", "", "derive the key from this seed instead of randomly")
	cmd.Flags().BoolVar(&modern, "modern", false, "print PVT_K1_/PUB_K1_ keys")
	return cmd
}

func (a *app) pubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pub PRIVATE_KEY",
		Short: "Print the public key of a private key",
		Long: `Print the public key of a private key, in the same form the
private key was written in.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := eosecc.ParsePrivateKey(args[0])
			if err != nil {
				return fmt.Errorf("parse private key: %w", err)
			}
			pub, err := priv.PublicKey()
			if err != nil {
				return fmt.Errorf("derive public key: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatPublic(pub, pub.Format()))
			return nil
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert KEY",
		Short: "Rewrite a private or public key in another form",
		Long: `Rewrite a private or public key in the legacy or modern form.

Examples:
  eoskey convert 5KQwrPbwdL6PhXujxW37FSSQZ1JiwsST4cqQzDeyXtP79zkvFD3 --to modern
  eoskey convert PUB_K1_6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5BoDq63 --to legacy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseKeyFormat(to)
			if err != nil {
				return err
			}

			if priv, err := eosecc.ParsePrivateKey(args[0]); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatPrivate(priv, format))
				return nil
			}
			pub, err := eosecc.ParsePublicKeyWithPrefix(args[0], a.cfg.PublicPrefix)
			if err != nil {
				if errors.Is(err, eosecc.ErrInvalidKey) {
					return fmt.Errorf("%q is not a private or public key", args[0])
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatPublic(pub, format))
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "modern", "target form: legacy or modern")
	return cmd
}
