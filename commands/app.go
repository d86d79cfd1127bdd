// Package commands defines the CLI subcommands.
package commands

import (
	"log/slog"

	"github.com/michhsolis/Actividad-06-VPN/config"
	"github.com/michhsolis/Actividad-06-VPN/logging"
	"github.com/michhsolis/Actividad-06-VPN/services"
)

// appContext bundles the configured service stack shared by every
// subcommand.
type appContext struct {
	cfg       config.Config
	logger    *slog.Logger
	discovery *services.DiscoveryService
	analysis  *services.AnalysisService
	transfer  *services.TransferService
}

func bootstrap() (*appContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Logging)
	slog.SetDefault(logger)

	runner := services.NewRunner()
	discovery := services.NewDiscoveryService(cfg.Tailscale, runner, logger)
	prober := services.NewProbeService(cfg.Tailscale, runner, logger)

	return &appContext{
		cfg:       cfg,
		logger:    logger,
		discovery: discovery,
		analysis:  services.NewAnalysisService(discovery, prober, logger),
		transfer:  services.NewTransferService(cfg.Transfer, runner, logger),
	}, nil
}
