package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the latest site data and serve the admin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if e.cfg.SlogLevel() > slog.LevelDebug {
				gin.SetMode(gin.ReleaseMode)
			}

			a, err := e.app(ctx)
			if err != nil {
				return err
			}
			src, err := a.Site.Bootstrap(ctx)
			if err != nil {
				return err
			}
			a.Logger.Info("bootstrap_done", slog.String("source", string(src)), slog.String("store", a.Driver))

			r, err := a.Router()
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              e.cfg.Addr,
				Handler:           r,
				ReadHeaderTimeout: 10 * time.Second,
			}
			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()
			a.Logger.Info("server_started", slog.String("addr", e.cfg.Addr))

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			a.Logger.Info("server_stopping")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :8080)")
	return cmd
}
