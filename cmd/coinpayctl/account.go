package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ramzeysiele/coinpayments"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the account behind the API keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			info, err := client.GetBasicInfo(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, info)
		},
	}
}

func newRatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show the exchange rate table",
		RunE: func(cmd *cobra.Command, args []string) error {
			short, _ := cmd.Flags().GetBool("short")
			accepted, _ := cmd.Flags().GetInt("accepted")
			client, err := newClient()
			if err != nil {
				return err
			}
			rates, err := client.Rates(cmd.Context(), coinpayments.RatesRequest{Short: short, Accepted: accepted})
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, rates)
		},
	}
	cmd.Flags().Bool("short", false, "Omit coin names and capability lists")
	cmd.Flags().Int("accepted", 0, "0 all coins, 1 accepted only, 2 accepted plus convertible")
	return cmd
}

func newBalancesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Show account balances by coin",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			client, err := newClient()
			if err != nil {
				return err
			}
			balances, err := client.Balances(cmd.Context(), coinpayments.BalancesRequest{All: all})
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, balances)
		},
	}
	cmd.Flags().Bool("all", false, "Include coins with a zero balance")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
