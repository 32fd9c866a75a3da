package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artgallery-api/config"
	"artgallery-api/database"
	routes "artgallery-api/internal/app/http"
	"artgallery-api/internal/domain/favorites"
	"artgallery-api/internal/domain/works"
	"artgallery-api/internal/infra/memory"
	"artgallery-api/internal/infra/postgres"
	"artgallery-api/internal/logging"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type store interface {
	works.Store
	favorites.Store
}

func main() {
	config.LoadEnv()
	gin.SetMode(config.GIN_MODE)

	logger, fluentClient := newLogger()
	if fluentClient != nil {
		defer fluentClient.Close()
	}
	appLogger := logger.WithFields(logging.Fields{"component": "app"})

	st, closeStore, err := openStore(appLogger)
	if err != nil {
		appLogger.Error("Failed to open store", err, logging.Fields{"driver": config.STORE_DRIVER})
		os.Exit(1)
	}
	defer closeStore()

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.CORS_ORIGINS,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Trace-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Artworks:  st,
		Favorites: st,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:              ":" + config.PORT,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		appLogger.Info("Server starting", logging.Fields{"addr": srv.Addr, "store": config.STORE_DRIVER})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		appLogger.Info("Shutdown signal received", nil)
	case err := <-serverErrors:
		appLogger.Error("Server failed", err, nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server shutdown failed", err, nil)
	}
	appLogger.Info("Server stopped", nil)
}

func newLogger() (logging.Logger, *fluent.Fluent) {
	stdout := logging.NewSlogLogger(logging.SlogConfig{
		Level:  logging.ParseLevel(config.LOG_LEVEL),
		IsJSON: config.LOG_JSON,
	})
	loggers := []logging.Logger{stdout}

	var client *fluent.Fluent
	if config.FLUENTBIT_ENABLED {
		c, err := logging.NewFluentClient(logging.FluentConfig{
			Host:      config.FLUENTBIT_HOST,
			Port:      config.FLUENTBIT_PORT,
			TagPrefix: config.APP_NAME,
		})
		if err != nil {
			stdout.Error("Failed to create fluentbit client, continuing with stdout only", err, nil)
		} else {
			fl, err := logging.NewFluentLogger(c, logging.ParseLevel(config.FLUENTBIT_LEVEL))
			if err != nil {
				stdout.Error("Failed to create fluentbit logger", err, nil)
				c.Close()
			} else {
				client = c
				loggers = append(loggers, fl)
			}
		}
	}

	multi, err := logging.NewMultiLogger(loggers...)
	if err != nil {
		return stdout, client
	}
	return multi.WithFields(logging.Fields{"service_name": config.APP_NAME}), client
}

func openStore(logger logging.Logger) (store, func(), error) {
	if config.STORE_DRIVER == config.DriverMemory {
		logger.Warn("Using in-memory store; data is lost on restart", nil)
		return memory.New(), func() {}, nil
	}

	db, err := database.Open(config.DB_URL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Connected and migrated successfully", nil)

	st, err := postgres.New(db)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return st, closeFn, nil
}
