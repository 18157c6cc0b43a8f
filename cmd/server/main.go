package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/best-life-api/internal/config"
	"github.com/best-life-api/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var logLevel string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Best Life data API and persona selector",
	Long: `Runs the Best Life services.

Available subcommands:
  api     - Serve the data access API
  ui      - Serve the persona selector
  migrate - Apply or roll back schema migrations`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override LOG_LEVEL")

	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and builds the service logger
func setup(service string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, logger.New(cfg.Log, service), nil
}

// serve runs srv until SIGINT or SIGTERM, then shuts it down gracefully
func serve(srv *http.Server, shutdownTimeout time.Duration, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-quit:
	}
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Info().Msg("Server exited gracefully")
	return nil
}
