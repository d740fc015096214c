package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shardkit/shardkit/sss"
)

var recoverCmd = &cobra.Command{
	Use:   "recover [share]...",
	Short: "Reconstruct a secret from share strings",
	Long: `Recover takes share strings as arguments, or one per line from --in
or stdin, and writes the reconstructed secret bytes to stdout (or --out).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		shares := args
		if len(shares) == 0 {
			raw, err := readInput(cmd)
			if err != nil {
				return err
			}
			shares = strings.Fields(string(raw))
		}

		verify, _ := cmd.Flags().GetBool("verify")
		if verify {
			if err := sss.VerifyShares(shares); err != nil {
				return err
			}
		}

		secret, err := sss.Recover(shares)
		if err != nil {
			return err
		}

		outPath, _ := cmd.Flags().GetString("out")
		if outPath != "" {
			if err := os.WriteFile(outPath, secret, 0o600); err != nil {
				return err
			}
		} else if _, err := cmd.OutOrStdout().Write(secret); err != nil {
			return err
		}

		logger.Info("secret recovered",
			"shares", len(shares),
			"secret_bytes", len(secret),
		)

		return nil
	},
}

func init() {
	recoverCmd.Flags().String("in", "", "file holding one share string per line (default stdin)")
	recoverCmd.Flags().String("out", "", "write the secret to a file instead of stdout")
	recoverCmd.Flags().Bool("verify", false, "cross-check extra shares before recovering")
}
