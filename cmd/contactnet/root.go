package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/contactnet/internal/config"
)

// newRootCommand wires the generate subcommand under a shared config.
func newRootCommand() *cobra.Command {
	cfg := config.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "contactnet",
		Short:         "Random contact network generator",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile == "" {
				return nil
			}
			return cfg.LoadFromFile(cfgFile)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = cfg.Viper().BindPFlag(config.KeyLogLevel, cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(newGenerateCommand(cfg))
	return cmd
}
