package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	downlinePage  int
	downlineLimit int
)

var downlinesCmd = &cobra.Command{
	Use:   "downlines",
	Short: "List referred accounts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		deliver(registry.Downlines(cmd.Context(), downlinePage, downlineLimit))
	},
}

var checkDownlineCmd = &cobra.Command{
	Use:   "check-downline <email>",
	Short: "Check whether an email belongs to your downline",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deliver(registry.CheckDownline(cmd.Context(), args[0]))
	},
}

var voucherCmd = &cobra.Command{
	Use:   "voucher <amount-idr> <email>",
	Short: "Create a rupiah voucher for another user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[0], err)
		}
		deliver(registry.CreateVoucher(cmd.Context(), amount, args[1]))
		return nil
	},
}

func init() {
	downlinesCmd.Flags().IntVar(&downlinePage, "page", 1, "page number")
	downlinesCmd.Flags().IntVar(&downlineLimit, "limit", 10, "entries per page")

	rootCmd.AddCommand(downlinesCmd)
	rootCmd.AddCommand(checkDownlineCmd)
	rootCmd.AddCommand(voucherCmd)
}
