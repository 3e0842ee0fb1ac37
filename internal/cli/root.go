package cli

import (
	"context"

	"plaiz_studio/internal/app"
	appconfig "plaiz_studio/internal/infrastructure/config"
	"plaiz_studio/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd returns the plaizctl command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "plaizctl",
		Short: "Operator tooling for the Plaiz Studio lifecycle service",
		Long: `plaizctl runs maintenance tasks against the same stores as the API:
the reconciliation sweep, manual payout transfers, and bearer tokens for local testing.`,
		SilenceUsage: true,
	}

	root.AddCommand(ReconcileCmd())
	root.AddCommand(TransferCmd())
	root.AddCommand(TokenCmd())

	return root
}

func loadConfig() (appconfig.Config, *zap.Logger, error) {
	cfg, err := appconfig.Load()
	if err != nil {
		return appconfig.Config{}, nil, err
	}
	return cfg, logger.New(cfg.LogLevel), nil
}

// withContainer wires the use cases for one command run.
func withContainer(ctx context.Context, fn func(c *app.Container) error) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	c, err := app.Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}
