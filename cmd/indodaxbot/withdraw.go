package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"indodax-bot/internal/indodax"
)

var withdrawFeeNetwork string

var withdrawFeeCmd = &cobra.Command{
	Use:   "withdraw-fee <currency>",
	Short: "Show the withdrawal fee for a currency",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deliver(registry.WithdrawFee(cmd.Context(), args[0], withdrawFeeNetwork))
	},
}

var (
	withdrawNetwork   string
	withdrawRequestID string
	withdrawMemo      string
)

var withdrawCmd = &cobra.Command{
	Use:   "withdraw <currency> <address> <amount>",
	Short: "Withdraw an asset to an on-chain address",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := decimal.NewFromString(args[2])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[2], err)
		}
		deliver(registry.Withdraw(cmd.Context(), indodax.WithdrawRequest{
			Currency:  args[0],
			Network:   withdrawNetwork,
			Address:   args[1],
			Amount:    amount,
			RequestID: withdrawRequestID,
			Memo:      withdrawMemo,
		}))
		return nil
	},
}

var (
	withdrawUserRequestID string
	withdrawUserMemo      string
)

var withdrawUsernameCmd = &cobra.Command{
	Use:   "withdraw-username <currency> <username> <amount>",
	Short: "Transfer an asset to another account by username",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := decimal.NewFromString(args[2])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[2], err)
		}
		deliver(registry.WithdrawByUsername(cmd.Context(), indodax.WithdrawUsernameRequest{
			Currency:  args[0],
			Username:  args[1],
			Amount:    amount,
			RequestID: withdrawUserRequestID,
			Memo:      withdrawUserMemo,
		}))
		return nil
	},
}

func init() {
	withdrawFeeCmd.Flags().StringVar(&withdrawFeeNetwork, "network", "", "network to quote the fee for")

	withdrawCmd.Flags().StringVar(&withdrawNetwork, "network", "", "withdrawal network (required)")
	withdrawCmd.Flags().StringVar(&withdrawRequestID, "request-id", "", "idempotency key; reuse to retry safely")
	withdrawCmd.Flags().StringVar(&withdrawMemo, "memo", "", "destination memo or tag")
	_ = withdrawCmd.MarkFlagRequired("network")

	withdrawUsernameCmd.Flags().StringVar(&withdrawUserRequestID, "request-id", "", "idempotency key; reuse to retry safely")
	withdrawUsernameCmd.Flags().StringVar(&withdrawUserMemo, "memo", "", "transfer memo")

	rootCmd.AddCommand(withdrawFeeCmd)
	rootCmd.AddCommand(withdrawCmd)
	rootCmd.AddCommand(withdrawUsernameCmd)
}
