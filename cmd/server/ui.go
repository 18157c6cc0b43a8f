package main

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/best-life-api/internal/metrics"
	"github.com/best-life-api/internal/ui"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// uiCmd serves the persona selector
var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Serve the persona selector",
	RunE:  runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup("best-life-ui")
	if err != nil {
		return err
	}
	log.Info().Str("api", cfg.UI.APIBaseURL).Msg("Starting Best Life UI server...")

	personas, err := ui.LoadPersonas()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := ui.NewStore(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Error().Err(err).Msg("Failed to create session store")
		return err
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}

	client := ui.NewAPIClient(cfg.UI, log)
	defer client.Close()

	h, err := ui.NewHandler(personas, client, store, cfg.Session, log)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	router := ui.NewRouter(h, metrics.New("ui"), log)

	srv := &http.Server{
		Addr:         ":" + cfg.UI.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	return serve(srv, cfg.Server.ShutdownTimeout, log)
}
