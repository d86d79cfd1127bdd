package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/michhsolis/Actividad-06-VPN/config"
	"github.com/michhsolis/Actividad-06-VPN/models"
)

// TransferService copies local files to remote hosts over scp.
type TransferService struct {
	binary string
	runner Runner
	logger *slog.Logger
}

func NewTransferService(cfg config.TransferConfig, runner Runner, logger *slog.Logger) *TransferService {
	return &TransferService{
		binary: cfg.SCPBinary,
		runner: runner,
		logger: logger,
	}
}

// Transfer copies the file at req.LocalPath to req.Target
// (user@host:/path). Authentication is scp's concern; a failure is
// returned with the scp stderr attached.
func (ts *TransferService) Transfer(ctx context.Context, req models.TransferRequest) (models.TransferResult, error) {
	if req.LocalPath == "" || req.Target == "" {
		return models.TransferResult{}, errors.New("transfer: local path and target are required")
	}
	if _, err := os.Stat(req.LocalPath); err != nil {
		return models.TransferResult{}, fmt.Errorf("transfer: %w", err)
	}

	_, stderr, err := ts.runner.Run(ctx, ts.binary, req.LocalPath, req.Target)
	if err != nil {
		return models.TransferResult{}, fmt.Errorf("scp %s to %s: %w: %s",
			req.LocalPath, req.Target, err, strings.TrimSpace(string(stderr)))
	}

	ts.logger.Info("transfer complete", "path", req.LocalPath, "target", req.Target)
	return models.TransferResult{LocalPath: req.LocalPath, Target: req.Target}, nil
}
