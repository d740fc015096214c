package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shardkit/shardkit/entropy"
	"github.com/shardkit/shardkit/sss"
)

// lowEntropyThreshold flags secrets whose byte distribution is far from
// uniform, such as short passwords or repeated patterns.
const lowEntropyThreshold = 0.3

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a secret into share strings",
	Long: `Split reads the secret bytes from --in (or stdin) and prints one
share string per line. Any --threshold of the --shares lines recover the
secret; fewer reveal nothing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		shares := cfg.Shares
		if cmd.Flags().Changed("shares") {
			shares, _ = cmd.Flags().GetInt("shares")
		}

		threshold := cfg.Threshold
		if cmd.Flags().Changed("threshold") {
			threshold, _ = cmd.Flags().GetInt("threshold")
		}

		secret, err := readInput(cmd)
		if err != nil {
			return err
		}

		if norm := entropy.Normalized(secret); len(secret) > 0 && norm < lowEntropyThreshold {
			logger.Warn("secret looks guessable", "normalized_entropy", fmt.Sprintf("%.2f", norm))
		}

		out, err := sss.Split(secret, shares, threshold)
		if err != nil {
			return err
		}

		for _, share := range out {
			fmt.Fprintln(cmd.OutOrStdout(), share)
		}

		logger.Info("secret split",
			"shares", shares,
			"threshold", threshold,
			"secret_bytes", len(secret),
		)

		return nil
	},
}

func init() {
	splitCmd.Flags().IntP("shares", "n", 0, "total number of shares to produce")
	splitCmd.Flags().IntP("threshold", "k", 0, "minimum shares needed for recovery")
	splitCmd.Flags().String("in", "", "file holding the secret bytes (default stdin)")
}
