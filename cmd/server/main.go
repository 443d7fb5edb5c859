package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"crm-backend/internal/api/routes"
	"crm-backend/internal/config"
	"crm-backend/internal/database"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository"
	"crm-backend/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "crm-backend/docs" // This is needed for swag
)

const (
	serviceName           = "crm-backend"
	sessionSweepInterval  = time.Hour
	profileSweepInterval  = time.Minute
	shutdownTimeout       = 10 * time.Second
	telemetryFlushTimeout = 5 * time.Second
)

//	@title			CRM Backend API
//	@version		1.0
//	@description	Multi-tenant CRM backend for tracking companies along a sales pipeline with their interaction logs.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/

//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						session_token
//	@description				Signed session cookie set by /api/auth/sign-in. API clients may send the same value as "Bearer <value>" in the Authorization header.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry := telemetry.Setup(ctx, cfg, serviceName, routes.Version)
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			logrus.WithError(err).Warn("telemetry shutdown failed")
		}
	}()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, err := routes.NewDependencies(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize dependencies: ", err)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, deps)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	// Background sweeps stop with ctx
	go deps.Profiles.Run(ctx, profileSweepInterval)
	go sweepSessions(ctx, repository.NewSessionRepository(db))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(router, serviceName),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// sweepSessions deletes expired sessions until ctx is done. The guard already
// rejects them; this only keeps the table small.
func sweepSessions(ctx context.Context, sessions repository.SessionRepositoryInterface) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := sessions.DeleteExpired(ctx)
			if err != nil {
				logrus.WithError(err).Warn("expired session sweep failed")
				continue
			}
			if removed > 0 {
				logrus.WithField("removed", removed).Info("expired sessions removed")
			}
		}
	}
}
