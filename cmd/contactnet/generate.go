package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/contactnet/internal/config"
	"github.com/katalvlaran/contactnet/network"
)

func newGenerateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a network and print its summary",
		Long: `Generate resizes a network to --nodes nodes with N(0,1) values, links it
with Poisson(--mean-degree) target degrees and prints degree, component
and value statistics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runGenerate(cfg, cmd.OutOrStdout(), cfg.CreateLogger())
		},
	}

	flags := cmd.Flags()
	flags.Int("nodes", 1000, "number of nodes")
	flags.Float64("mean-degree", 4.0, "Poisson mean of per-node target degree")
	flags.Int64("seed", 0, "random seed (default: time based)")
	flags.Int("max-attempts", 0, "candidate draws per link (0: 32 × nodes)")
	flags.Int("top", 10, "print the top-k node values")
	flags.Int("reach-from", -1, "report nodes reachable from this node (negative: off)")

	v := cfg.Viper()
	_ = v.BindPFlag(config.KeyNodes, flags.Lookup("nodes"))
	_ = v.BindPFlag(config.KeyMeanDegree, flags.Lookup("mean-degree"))
	_ = v.BindPFlag(config.KeyMaxAttempts, flags.Lookup("max-attempts"))
	_ = v.BindPFlag(config.KeyTop, flags.Lookup("top"))
	_ = v.BindPFlag(config.KeyReachFrom, flags.Lookup("reach-from"))
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		// an unset --seed must not override the time-based default
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetInt64("seed")
			cfg.Set(config.KeySeed, seed)
		}
	}

	return cmd
}

// runGenerate builds the network described by cfg and writes the report to out.
func runGenerate(cfg *config.Config, out io.Writer, log zerolog.Logger) error {
	nw := network.New(
		network.WithSeed(cfg.Seed()),
		network.WithMaxAttempts(cfg.MaxAttempts()),
		network.WithLogger(log),
	)
	nw.Resize(cfg.Nodes())

	log.Info().
		Int("nodes", nw.Size()).
		Float64("mean_degree", cfg.MeanDegree()).
		Uint64("seed", cfg.Seed()).
		Msg("connecting network")

	links, err := nw.RandomConnect(cfg.MeanDegree())
	if err != nil {
		log.Error().Err(err).Int("links", links).Msg("random connect failed")
		return fmt.Errorf("generate: %w", err)
	}
	log.Info().Int("links", links).Msg("network connected")

	return writeReport(out, nw, cfg.Top(), cfg.ReachFrom())
}
