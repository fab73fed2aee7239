// Command proxy-lattice validates lattice schemas, generates typed proxy
// packages from them and serves the operator lookup endpoint.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"proxy-lattice/internal/logging"
)

var (
	// Global flags
	verbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "proxy-lattice",
	Short: "Typed proxies over foreign object handles",
	Long: `proxy-lattice works on a YAML description of a foreign type hierarchy.

It checks the schema, generates a Go package with one proxy type per
foreign type, answers cast questions about the lattice and serves the
@operators lookup endpoint.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		opts, err := logging.ParseFormat(os.Getenv("LOG_FORMAT"))
		if err != nil {
			return fmt.Errorf("LOG_FORMAT: %w", err)
		}

		if verbose {
			opts.Debug = true
		}

		logger, err = logging.New(opts)

		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(castCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
