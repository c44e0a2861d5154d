package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"indodax-bot/internal/config"
	"indodax-bot/internal/indodax"
	"indodax-bot/internal/notify"
	"indodax-bot/internal/report"
)

const dotenvFile = ".env"

var (
	configPath string
	sendNotify bool
	verbose    bool

	registry  *report.Registry
	notifyMgr *notify.Manager
)

var rootCmd = &cobra.Command{
	Use:           "indodaxbot",
	Short:         "Signed Indodax trade API client with chat-ready reports",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		if _, err := os.Stat(dotenvFile); err == nil {
			if err := godotenv.Load(dotenvFile); err != nil {
				return fmt.Errorf("load %s: %w", dotenvFile, err)
			}
		}
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		client, err := indodax.New(indodax.Options{
			APIKey:         cfg.Exchange.APIKey,
			SecretKey:      cfg.Exchange.SecretKey,
			Endpoint:       cfg.Exchange.Endpoint,
			RecvWindowMs:   cfg.Exchange.RecvWindowMs,
			HTTPTimeoutSec: cfg.Exchange.HTTPTimeoutSec,
			RequestsPerSec: cfg.Exchange.RequestsPerSec,
			RequestBurst:   cfg.Exchange.RequestBurst,
			OrderPrefix:    cfg.InstanceID,
			MinOrderIDR:    cfg.Trade.MinIDR.Decimal,
		})
		if err != nil {
			return err
		}
		registry = report.NewRegistry(client)
		if sendNotify {
			if !cfg.Telegram.Enabled {
				return fmt.Errorf("--notify requires telegram to be enabled in the config")
			}
			notifyMgr = notify.NewManager(notify.NewTelegram(cfg.Telegram))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if notifyMgr == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := notifyMgr.Close(ctx); err != nil {
			logrus.WithError(err).Warn("notify manager close")
		}
	},
}

// deliver prints the caption and, when asked, queues it for telegram.
func deliver(caption string) {
	fmt.Println(caption)
	notifyMgr.Publish(caption)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/config.yaml", "config yaml path")
	rootCmd.PersistentFlags().BoolVar(&sendNotify, "notify", false, "also deliver the report to telegram")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "indodaxbot: %v\n", err)
		os.Exit(1)
	}
}
