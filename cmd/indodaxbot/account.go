package main

import (
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show account status, verification flags, and balances",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		deliver(registry.AccountInfo(cmd.Context()))
	},
}

var transactionsCmd = &cobra.Command{
	Use:   "transactions <start> <end>",
	Short: "Show deposit and withdrawal history between two dates (yyyy/mm/dd)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		deliver(registry.Transactions(cmd.Context(), args[0], args[1]))
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(transactionsCmd)
}
