package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"slidedeck/config"
	_ "slidedeck/docs"
	"slidedeck/internal/adapters/auth"
	"slidedeck/internal/adapters/email"
	delivery "slidedeck/internal/delivery/http"
	"slidedeck/internal/delivery/http/controllers"
	"slidedeck/internal/delivery/http/middleware"
	"slidedeck/internal/repository/postgres"
	"slidedeck/internal/services"
)

// @title Slidedeck API
// @version 1.0
// @description CRUD backend for the presentation editor: presentations and slides, gated by per-user ownership.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}
	if err := postgres.RunMigrations(db); err != nil {
		logger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	presentationRepo := postgres.NewPresentationRepository(db)
	slideRepo := postgres.NewSlideRepository(db)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	deckService := services.NewDeckService(presentationRepo, slideRepo, emailService, cfg.RequestTimeout)

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	presentationController := controllers.NewPresentationController(logger, deckService)
	slideController := controllers.NewSlideController(logger, deckService)

	mux := delivery.NewRouter(presentationController, slideController, verifier, logger)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.Logging(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}
