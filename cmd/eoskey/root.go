package main

import (
	"fmt"
	"os"

	"github.com/ModChain/eosecc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// GlobalFlags are the flags shared by every command.
type GlobalFlags struct {
	ConfigPath string
	Debug      bool
}

// app carries what PersistentPreRunE resolved to the subcommands.
type app struct {
	flags GlobalFlags
	cfg   Config
	log   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "eoskey",
		Short: "EOS K1 key and signature tool",
		Long: `eoskey generates, converts and inspects EOS K1 keys and signs,
verifies and recovers signatures.

Keys are read in either the legacy form (5... WIF, FU... public keys) or
the modern PUB_K1_/PVT_K1_ form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadFromPath(a.flags.ConfigPath)
			if err != nil {
				return err
			}
			level := cfg.LogLevel
			if a.flags.Debug {
				level = "debug"
			}
			logger, err := newLogger(cmd.ErrOrStderr(), level)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.Named(cmd.Name())
			eosecc.UseLogger(logger)

			a.log.Debug("configuration loaded",
				zap.String("public_prefix", cfg.PublicPrefix),
				zap.Stringer("key_format", cfg.KeyFormat))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.ConfigPath, "config", "", "config file (default: ./eoskey.yaml)")
	root.PersistentFlags().BoolVar(&a.flags.Debug, "debug", false, "enable debug logging")

	root.AddCommand(
		a.genCmd(),
		a.pubCmd(),
		a.signCmd(),
		a.verifyCmd(),
		a.recoverCmd(),
		a.convertCmd(),
		a.deriveCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// formatPublic writes pub in format, using the configured legacy prefix.
func (a *app) formatPublic(pub *eosecc.PublicKey, format eosecc.KeyFormat) string {
	if format == eosecc.FormatModern {
		return pub.ModernString()
	}
	return pub.LegacyString(a.cfg.PublicPrefix)
}

func formatPrivate(priv *eosecc.PrivateKey, format eosecc.KeyFormat) string {
	if format == eosecc.FormatModern {
		return priv.ModernString()
	}
	return priv.WIF()
}

// outputFormat is the configured key format unless --modern was given.
func (a *app) outputFormat(modern bool) eosecc.KeyFormat {
	if modern {
		return eosecc.FormatModern
	}
	return a.cfg.KeyFormat
}
