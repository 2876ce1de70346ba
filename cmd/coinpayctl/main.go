// coinpayctl is a developer CLI for the CoinPayments API: account and
// transaction commands against the live API, plus a local IPN listener for
// callback development. Credentials come from COINPAYMENTS_* environment
// variables (a .env file in the working directory is honored).
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ramzeysiele/coinpayments"
)

var rootCmd = &cobra.Command{
	Use:   "coinpayctl",
	Short: "CLI client for the CoinPayments API",
	Long: `coinpayctl issues CoinPayments API commands and runs a local IPN
listener. Set COINPAYMENTS_PUBLIC_KEY and COINPAYMENTS_PRIVATE_KEY in the
environment or a .env file.`,
	SilenceUsage: true,
}

// newClient builds the API client from the environment. Called by RunE
// bodies rather than at startup so "coinpayctl listen" works without API
// keys.
func newClient() (*coinpayments.Client, error) {
	c, err := coinpayments.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	return c, nil
}

func main() {
	// Best effort: absence of a .env file is the normal case.
	_ = godotenv.Load()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("COINPAYMENTS_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	rootCmd.AddCommand(newInfoCmd(), newRatesCmd(), newBalancesCmd())
	rootCmd.AddCommand(newTxnCmd())
	rootCmd.AddCommand(newListenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
