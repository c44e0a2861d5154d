package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"indodax-bot/internal/indodax"
)

var (
	tradePrice     string
	tradeOrderType string
	tradeClientID  string
	tradeTIF       string
)

var tradeCmd = &cobra.Command{
	Use:   "trade <pair> <buy|sell> <amount>",
	Short: "Place an order; amount is IDR for buys and market orders, base asset for limit sells",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := decimal.NewFromString(args[2])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[2], err)
		}
		req := indodax.TradeRequest{
			Pair:          args[0],
			Side:          args[1],
			OrderType:     tradeOrderType,
			Amount:        amount,
			ClientOrderID: tradeClientID,
			TimeInForce:   tradeTIF,
		}
		if tradePrice != "" {
			price, err := decimal.NewFromString(tradePrice)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", tradePrice, err)
			}
			req.Price = price
		}
		deliver(registry.Trade(cmd.Context(), req))
		return nil
	},
}

var (
	tradesCount   int
	tradesFromID  int64
	tradesEndID   int64
	tradesOrder   string
	tradesSince   string
	tradesUntil   string
	tradesOrderID int64
)

var tradesCmd = &cobra.Command{
	Use:   "trades <pair>",
	Short: "Show executed trades for a pair",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := indodax.TradeHistoryRequest{
			Pair:    args[0],
			Count:   tradesCount,
			FromID:  tradesFromID,
			EndID:   tradesEndID,
			Order:   tradesOrder,
			OrderID: tradesOrderID,
		}
		if tradesSince != "" {
			since, err := time.ParseInLocation("2006-01-02", tradesSince, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --since %q: %w", tradesSince, err)
			}
			req.Since = since
		}
		if tradesUntil != "" {
			until, err := time.ParseInLocation("2006-01-02", tradesUntil, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --until %q: %w", tradesUntil, err)
			}
			req.End = until
		}
		deliver(registry.TradeHistory(cmd.Context(), req))
		return nil
	},
}

var openOrdersCmd = &cobra.Command{
	Use:   "open-orders [pair]",
	Short: "Show resting orders, optionally limited to one pair",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pair := ""
		if len(args) > 0 {
			pair = args[0]
		}
		deliver(registry.OpenOrders(cmd.Context(), pair))
	},
}

var (
	orderHistoryCount int
	orderHistoryFrom  int64
)

var orderHistoryCmd = &cobra.Command{
	Use:   "order-history <pair>",
	Short: "Show finished orders for a pair",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deliver(registry.OrderHistory(cmd.Context(), args[0], orderHistoryCount, orderHistoryFrom))
	},
}

var orderCmd = &cobra.Command{
	Use:   "order <pair> <order-id>",
	Short: "Show a single order",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id %q: %w", args[1], err)
		}
		deliver(registry.Order(cmd.Context(), args[0], orderID))
		return nil
	},
}

var cancelOrderType string

var cancelCmd = &cobra.Command{
	Use:   "cancel <pair> <order-id> <buy|sell>",
	Short: "Cancel a resting order",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id %q: %w", args[1], err)
		}
		deliver(registry.Cancel(cmd.Context(), args[0], orderID, args[2], cancelOrderType))
		return nil
	},
}

func init() {
	tradeCmd.Flags().StringVar(&tradePrice, "price", "", "limit price in quote currency")
	tradeCmd.Flags().StringVar(&tradeOrderType, "type", "limit", "order type: limit or market")
	tradeCmd.Flags().StringVar(&tradeClientID, "client-order-id", "", "client order id (default derived from timestamp)")
	tradeCmd.Flags().StringVar(&tradeTIF, "time-in-force", "GTC", "time in force")

	tradesCmd.Flags().IntVar(&tradesCount, "count", 1000, "maximum trades to return")
	tradesCmd.Flags().Int64Var(&tradesFromID, "from-id", 0, "only trades after this trade id")
	tradesCmd.Flags().Int64Var(&tradesEndID, "end-id", 0, "only trades up to this trade id")
	tradesCmd.Flags().StringVar(&tradesOrder, "order", "desc", "sort order: asc or desc")
	tradesCmd.Flags().StringVar(&tradesSince, "since", "", "start date (yyyy-mm-dd)")
	tradesCmd.Flags().StringVar(&tradesUntil, "until", "", "end date (yyyy-mm-dd)")
	tradesCmd.Flags().Int64Var(&tradesOrderID, "order-id", 0, "only trades for this order id")

	orderHistoryCmd.Flags().IntVar(&orderHistoryCount, "count", 1000, "maximum orders to return")
	orderHistoryCmd.Flags().Int64Var(&orderHistoryFrom, "from", 0, "offset into the order list")

	cancelCmd.Flags().StringVar(&cancelOrderType, "type", "limit", "order type: limit or market")

	rootCmd.AddCommand(tradeCmd)
	rootCmd.AddCommand(tradesCmd)
	rootCmd.AddCommand(openOrdersCmd)
	rootCmd.AddCommand(orderHistoryCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(cancelCmd)
}
