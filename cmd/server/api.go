package main

import (
	"net/http"

	"github.com/best-life-api/internal/api"
	"github.com/best-life-api/internal/database"
	"github.com/best-life-api/internal/metrics"
	"github.com/best-life-api/internal/repository"
	"github.com/best-life-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var skipMigrations bool

// apiCmd serves the data access API
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the data access API",
	RunE:  runAPI,
}

func init() {
	apiCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply pending migrations on startup")
}

func runAPI(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup("best-life-api")
	if err != nil {
		return err
	}
	log.Info().Msg("Starting Best Life API server...")

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database")
		return err
	}
	defer db.Close()

	// Run migrations
	if !skipMigrations {
		if err := db.RunMigrations(cfg.Server.MigrationsPath); err != nil {
			log.Error().Err(err).Msg("Failed to run database migrations")
			return err
		}
	}

	repos := repository.New(db)
	services := service.NewServices(repos, cfg, log)

	m := metrics.New("api")
	m.RegisterDB(db.DB, cfg.Database.Name)

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(services, db, m, cfg, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	return serve(srv, cfg.Server.ShutdownTimeout, log)
}
