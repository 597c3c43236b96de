// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/log"
	"github.com/spf13/cobra"

	"github.com/luxfi/greeter"
	"github.com/luxfi/greeter/config"
	evmrelay "github.com/luxfi/greeter/relay/evm"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "greet",
	Short: "Cross-domain greeting relay client CLI",
	Long: `greet sends text greetings to contracts on other domains through an
external delivery relayer, paying the relayer's quoted fee up front.

This CLI provides tools for quoting delivery prices, dispatching greetings,
and decoding greeting payloads.`,
	Version: fmt.Sprintf("%s (built %s)", version, buildDate),
}

func init() {
	rootCmd.PersistentFlags().String(config.ConfigFileKey, "", "Path to the relay client config file")
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(decodeCmd)

	quoteCmd.Flags().Uint16("domain", 0, "Target domain identifier")

	sendCmd.Flags().Uint16("domain", 0, "Target domain identifier")
	sendCmd.Flags().String("to", "", "Target contract address (hex)")
	sendCmd.Flags().String("message", "", "Greeting text to deliver")
	sendCmd.Flags().String("funds", "", "Funds to provide, in wei (defaults to the quoted cost)")

	decodeCmd.Flags().String("payload", "", "Hex-encoded greeting payload")
}

// newLogger builds a console logger at the configured level.
func newLogger(level string) (log.Logger, error) {
	logLevel, err := log.ToLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log-level %q: %w", level, err)
	}
	return log.NewLogger(
		"greet",
		*log.NewWrappedCore(logLevel, os.Stdout, log.Plain.ConsoleEncoder()),
	), nil
}

func buildClient(cmd *cobra.Command) (*greeter.Client, *evmrelay.Client, error) {
	v, err := config.BuildViper(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.NewConfig(v)
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	relay, err := evmrelay.NewClient(context.Background(), logger, &cfg)
	if err != nil {
		return nil, nil, err
	}
	client, err := greeter.NewClient(logger, relay, relay.SenderAddress())
	if err != nil {
		return nil, nil, err
	}
	return client, relay, nil
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote the delivery price for a target domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, _ := cmd.Flags().GetUint16("domain")

		client, _, err := buildClient(cmd)
		if err != nil {
			return err
		}
		cost, err := client.Quote(cmd.Context(), domain)
		if err != nil {
			return err
		}
		fmt.Printf("Delivery to domain %d costs %s wei (execution budget %d)\n",
			domain, cost, greeter.DeliveryGasLimit)
		return nil
	},
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a greeting to a contract on another domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, _ := cmd.Flags().GetUint16("domain")
		to, _ := cmd.Flags().GetString("to")
		message, _ := cmd.Flags().GetString("message")
		fundsStr, _ := cmd.Flags().GetString("funds")

		if !common.IsHexAddress(to) {
			return fmt.Errorf("invalid target address %q", to)
		}
		target := common.HexToAddress(to)

		client, _, err := buildClient(cmd)
		if err != nil {
			return err
		}

		var funds *uint256.Int
		if fundsStr == "" {
			funds, err = client.Quote(cmd.Context(), domain)
			if err != nil {
				return err
			}
		} else {
			funds, err = uint256.FromDecimal(fundsStr)
			if err != nil {
				return fmt.Errorf("invalid funds %q: %w", fundsStr, err)
			}
		}

		if err := client.SendGreeting(cmd.Context(), domain, target, message, funds); err != nil {
			return err
		}
		fmt.Printf("Greeting dispatched to %s on domain %d\n", target, domain)
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a hex-encoded greeting payload",
	RunE: func(cmd *cobra.Command, args []string) error {
		payloadHex, _ := cmd.Flags().GetString("payload")

		b, err := hex.DecodeString(strings.TrimPrefix(payloadHex, "0x"))
		if err != nil {
			return fmt.Errorf("invalid payload hex: %w", err)
		}
		p, err := greeter.ParseGreetingPayload(b)
		if err != nil {
			return err
		}
		fmt.Printf("Greeting: %s\n", p.Greeting)
		fmt.Printf("Sender:   %s\n", p.Sender)
		return nil
	},
}
