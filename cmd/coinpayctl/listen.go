package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ramzeysiele/coinpayments/internal/sign"
	"github.com/ramzeysiele/coinpayments/ipn"
)

// listenConfig is the environment surface of the IPN listener. The IPN
// secret is a separate credential from the API private key.
type listenConfig struct {
	IPNSecret  string `envconfig:"IPN_SECRET" required:"true"`
	MerchantID string `envconfig:"MERCHANT_ID"`
}

func newListenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Run a local IPN listener",
		Long: `listen verifies and logs incoming payment notifications, for
developing against a tunnel (ngrok and friends) without deploying. With
--forward-to, each verified notification is re-signed and re-POSTed to the
given URL, so a service under local development receives real IPNs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			path, _ := cmd.Flags().GetString("path")
			forwardTo, _ := cmd.Flags().GetString("forward-to")

			var cfg listenConfig
			if err := envconfig.Process("COINPAYMENTS", &cfg); err != nil {
				return fmt.Errorf("load listener config: %w", err)
			}
			return runListen(addr, path, forwardTo, cfg)
		},
	}
	cmd.Flags().String("addr", ":8632", "Listen address")
	cmd.Flags().String("path", "/ipn", "Callback path")
	cmd.Flags().String("forward-to", "", "URL to re-POST verified notifications to")
	return cmd
}

func runListen(addr, path, forwardTo string, cfg listenConfig) error {
	var forward func(ctx context.Context, n *ipn.Notification) error
	if forwardTo != "" {
		forward = newForwarder(forwardTo, cfg.IPNSecret)
	}

	handler := ipn.Handler(ipn.Config{MerchantID: cfg.MerchantID, IPNSecret: cfg.IPNSecret},
		func(ctx context.Context, n *ipn.Notification) error {
			log.Info().
				Str("ipn_id", n.IPNID).
				Str("type", n.IPNType).
				Str("txn_id", n.TxnID).
				Int("status", n.Status).
				Str("status_text", n.StatusText).
				Str("amount", n.Amount2).
				Str("currency", n.Currency2).
				Bool("complete", n.IsComplete()).
				Msg("ipn received")
			if forward != nil {
				return forward(ctx, n)
			}
			return nil
		})

	r := mux.NewRouter()
	r.Handle(path, handler).Methods(http.MethodPost)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	log.Info().Str("addr", addr).Str("path", path).Msg("IPN listener up")
	return srv.ListenAndServe()
}

// newForwarder re-POSTs notifications to a downstream URL. The body is
// re-encoded canonically and re-signed with the same IPN secret, so the
// downstream can verify it exactly like an original delivery.
func newForwarder(url, secret string) func(ctx context.Context, n *ipn.Notification) error {
	client := resty.New().
		SetHeader("Content-Type", sign.ContentType).
		SetTimeout(15 * time.Second)

	return func(ctx context.Context, n *ipn.Notification) error {
		body := sign.Encode(n.Fields)
		digest, err := sign.Sign(secret, []byte(body))
		if err != nil {
			return err
		}
		resp, err := client.R().
			SetContext(ctx).
			SetHeader(sign.HeaderHMAC, digest).
			SetBody(body).
			Post(url)
		if err != nil {
			return fmt.Errorf("forward ipn: %w", err)
		}
		if resp.IsError() {
			return fmt.Errorf("forward ipn: downstream answered %s", resp.Status())
		}
		log.Debug().Str("ipn_id", n.IPNID).Str("url", url).Int("status", resp.StatusCode()).Msg("ipn forwarded")
		return nil
	}
}
