package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shardkit/shardkit/xconfig"
	"github.com/shardkit/shardkit/xlogger"
)

// config holds the CLI defaults; flags override whatever the file and
// environment provide.
type config struct {
	Shares    int            `yaml:"shares"`
	Threshold int            `yaml:"threshold"`
	Log       xlogger.Config `yaml:"log"`
}

var (
	cfgFile string
	cfg     config
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sss",
	Short: "Split and recover secrets with Shamir's Secret Sharing",
	Long: `sss splits a secret into N printable share strings of which any K
reconstruct it, and recovers the secret from such shares. Share strings are
self-describing: byte width, threshold and share index travel in the header.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config{
			Shares:    5,
			Threshold: 3,
			Log:       xlogger.Config{Level: "info", Format: "text"},
		}

		opts := []xconfig.Option{xconfig.WithEnv("sss")}
		if cfgFile != "" {
			opts = append(opts, xconfig.WithFiles(cfgFile))
		}
		if err := xconfig.Load(&cfg, opts...); err != nil {
			return err
		}

		logger = xlogger.New(cmd.ErrOrStderr(), cfg.Log)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(recoverCmd)
}

// readInput returns the contents of the --in file, or stdin when unset.
func readInput(cmd *cobra.Command) ([]byte, error) {
	path, err := cmd.Flags().GetString("in")
	if err != nil {
		return nil, err
	}

	if path != "" {
		return os.ReadFile(path)
	}

	return io.ReadAll(cmd.InOrStdin())
}
