package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/PudgyPigeon/MockBankSystem/internal/factory"
	"github.com/PudgyPigeon/MockBankSystem/internal/storage/csvfile"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "bank",
		Short: "Single-user mock banking tool",
		Long: `bank is a single-user mock banking tool backed by a CSV account table.

It supports account creation and, for an authenticated account, balance
checks, deposits, withdrawals, and transfers to another account.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Overlay config file values where flags were not given
			if err := cfg.ApplyFile(cmd.Flags()); err != nil {
				return err
			}

			logger := newLogger(cfg.Verbose)

			storeCfg := csvfile.DefaultConfig()
			storeCfg.Path = cfg.StorePath
			storeCfg.CreateIfMissing = true

			var err error
			app, err = factory.New(factory.Config{
				Logger:      logger,
				StorageType: factory.StorageTypeCSV,
				CSVConfig:   &storeCfg,
			})
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.StorePath, "store", cfg.StorePath, "Account table file path (env: BANK_STORE)")
	rootCmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Config file path (env: BANK_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging")

	// Add subcommands
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newBalanceCmd())
	rootCmd.AddCommand(newDepositCmd())
	rootCmd.AddCommand(newWithdrawCmd())
	rootCmd.AddCommand(newTransferCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		NewOutput(outputFormat()).PrintError(err)
		os.Exit(1)
	}
}

// outputFormat is safe before cfg is initialized
func outputFormat() string {
	if cfg != nil {
		return cfg.Output
	}
	return "text"
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
