package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"kambel/internal/logging"
	"kambel/internal/proxy"
)

func newWebCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "web",
		Short: "Run the Presentation Proxy web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := logging.NewFromConfig(cfg, "web")
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			fallback, err := proxy.NewFallbackLog(cfg.Web.FallbackDir)
			if err != nil {
				return err
			}

			timeout := time.Duration(cfg.Web.RequestTimeout) * time.Second
			client := proxy.NewClient(cfg.Web.AuthorityURL, timeout, nil)

			srv := proxy.New(cfg, client, fallback, logger)
			if err := srv.Start(signalCtx); err != nil {
				return err
			}
			defer srv.Stop()

			logger.Info("proxying authority",
				logging.String("authority_url", cfg.Web.AuthorityURL),
				logging.String("fallback_dir", cfg.Web.FallbackDir))

			<-signalCtx.Done()
			logger.Info("web server shutting down")
			return nil
		},
	}
}
