package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"summify/internal/api"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.setup(os.Stdout)
			if err != nil {
				return err
			}
			defer a.cleanup()
			if addr != "" {
				a.cfg.Server.Addr = addr
			}

			if a.cfg.Production() {
				gin.SetMode(gin.ReleaseMode)
			}
			router := api.NewRouter(api.Deps{
				Engine:         a.engine,
				Backend:        a.tok.Backend().String(),
				Stopwords:      a.stops.Source(),
				Version:        version,
				AllowedOrigins: a.cfg.Server.AllowedOrigins,
				Logger:         a.log,
			})

			srv := &http.Server{
				Addr:         a.cfg.Server.Addr,
				Handler:      router,
				ReadTimeout:  time.Duration(a.cfg.Server.ReadTimeoutSecs) * time.Second,
				WriteTimeout: time.Duration(a.cfg.Server.WriteTimeoutSecs) * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			a.log.Info("Starting HTTP server",
				zap.String("addr", srv.Addr),
				zap.String("environment", a.cfg.Server.Environment),
				zap.String("tokenizer", a.tok.Backend().String()),
				zap.String("stopwords", a.stops.Source()),
				zap.String("version", version),
			)
			errCh := make(chan error, 1)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			select {
			case err := <-errCh:
				if err != nil {
					a.log.Error("Failed to start server", zap.Error(err))
					return err
				}
				return nil
			case <-ctx.Done():
			}

			a.log.Info("Shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.log.Error("Server forced to shutdown", zap.Error(err))
				return err
			}
			a.log.Info("Server exited")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	return cmd
}
