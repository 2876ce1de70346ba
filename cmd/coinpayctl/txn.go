package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ramzeysiele/coinpayments"
)

func newTxnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txn",
		Short: "Work with payment transactions",
	}
	cmd.AddCommand(newTxnCreateCmd(), newTxnGetCmd(), newTxnListCmd())
	return cmd
}

func newTxnCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a checkout payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, _ := cmd.Flags().GetString("amount")
			currency1, _ := cmd.Flags().GetString("currency1")
			currency2, _ := cmd.Flags().GetString("currency2")
			buyerEmail, _ := cmd.Flags().GetString("buyer-email")
			itemName, _ := cmd.Flags().GetString("item-name")
			invoice, _ := cmd.Flags().GetString("invoice")
			ipnURL, _ := cmd.Flags().GetString("ipn-url")

			if invoice == "" {
				invoice = uuid.NewString()
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			txn, err := client.CreateTransaction(cmd.Context(), coinpayments.CreateTransactionRequest{
				Amount:     amount,
				Currency1:  currency1,
				Currency2:  currency2,
				BuyerEmail: buyerEmail,
				ItemName:   itemName,
				Invoice:    invoice,
				IPNURL:     ipnURL,
			})
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, txn)
		},
	}
	cmd.Flags().String("amount", "", "Amount priced in currency1 (required)")
	cmd.Flags().String("currency1", "", "Pricing currency, e.g. USD (required)")
	cmd.Flags().String("currency2", "", "Coin the buyer pays with, e.g. BTC (required)")
	cmd.Flags().String("buyer-email", "", "Buyer's email address (required)")
	cmd.Flags().String("item-name", "", "Item description shown at checkout")
	cmd.Flags().String("invoice", "", "Invoice reference; a UUID is generated when omitted")
	cmd.Flags().String("ipn-url", "", "Callback URL for payment notifications")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("currency1")
	_ = cmd.MarkFlagRequired("currency2")
	_ = cmd.MarkFlagRequired("buyer-email")
	return cmd
}

func newTxnGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the current state of a payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			txid, _ := cmd.Flags().GetString("txid")
			full, _ := cmd.Flags().GetBool("full")
			client, err := newClient()
			if err != nil {
				return err
			}
			info, err := client.GetTxInfo(cmd.Context(), coinpayments.GetTxInfoRequest{TxID: txid, Full: full})
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, info)
		},
	}
	cmd.Flags().String("txid", "", "Transaction ID (required)")
	cmd.Flags().Bool("full", false, "Include checkout and shipping details")
	_ = cmd.MarkFlagRequired("txid")
	return cmd
}

func newTxnListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent transaction IDs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			start, _ := cmd.Flags().GetInt("start")
			all, _ := cmd.Flags().GetBool("all")
			client, err := newClient()
			if err != nil {
				return err
			}
			ids, err := client.GetTxIDs(cmd.Context(), coinpayments.GetTxIDsRequest{Limit: limit, Start: start, All: all})
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, ids)
		},
	}
	cmd.Flags().Int("limit", 25, "Number of IDs to return (1-100)")
	cmd.Flags().Int("start", 0, "Offset into the history")
	cmd.Flags().Bool("all", false, "Include completed and expired transactions")
	return cmd
}
