package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/michhsolis/Actividad-06-VPN/handlers"
)

var Serve = cli.Command{
	Name:  "serve",
	Usage: "run the HTTP API server",
	Action: func(_ *cli.Context) error {
		app, err := bootstrap()
		if err != nil {
			return err
		}

		analysisHandler := handlers.NewAnalysisHandler(app.analysis, app.discovery)
		transferHandler := handlers.NewTransferHandler(app.transfer)
		router := handlers.NewRouter(analysisHandler, transferHandler, app.cfg.HTTP.MetricsEnabled)

		srv := &http.Server{
			Addr:         fmt.Sprintf("%s:%d", app.cfg.HTTP.Host, app.cfg.HTTP.Port),
			Handler:      router,
			ReadTimeout:  app.cfg.HTTP.ReadTimeout,
			WriteTimeout: app.cfg.HTTP.WriteTimeout,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()
		app.logger.Info("server listening", "addr", srv.Addr)

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		app.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
