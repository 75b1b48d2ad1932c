package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog_backend/internal/config"
	"blog_backend/internal/handlers"
	"blog_backend/internal/logger"
	"blog_backend/internal/mailer"
	"blog_backend/internal/repository"
	"blog_backend/internal/repository/db"
	"blog_backend/internal/server"
	"blog_backend/internal/service"
	"blog_backend/internal/storage"
)

func main() {
	// load config (reads configs/config.yml plus env/.env)
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)

	// open DB
	database, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// upload store
	files, err := newFileStore(cfg)
	if err != nil {
		log.Fatalw("failed to init file store", "backend", cfg.Storage.Backend, "err", err)
	}

	// email templates + SMTP
	renderer, err := mailer.NewRenderer(cfg.Mail.TemplatesDir)
	if err != nil {
		log.Fatalw("failed to load email templates", "err", err)
	}
	sender := mailer.NewSMTPSender(cfg.SMTP, cfg.Mail.From)

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos, files, sender, renderer, cfg, log)
	apiHandler := handlers.NewHandler(services, files, log)

	// start HTTP server
	srv := &server.Server{}
	go func() {
		if err := srv.Run(cfg.Port, apiHandler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
	log.Infow("server started", "port", cfg.Port)

	waitForShutdown(srv, log)
}

// newFileStore selects the upload backend from configuration.
func newFileStore(cfg *config.Config) (storage.FileStore, error) {
	if cfg.Storage.Backend == "s3" {
		return storage.NewS3Store(context.Background(), cfg.Storage.S3)
	}
	return storage.NewLocalStore(cfg.Storage.LocalDir), nil
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
