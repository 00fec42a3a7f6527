package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/VinciYan/tileserv/internal/infrastructure/http/v1"
	"github.com/VinciYan/tileserv/internal/infrastructure/http/v1/handler"
	"github.com/VinciYan/tileserv/internal/repository/store"
	"github.com/VinciYan/tileserv/internal/usecase"
	"github.com/VinciYan/tileserv/pkg/config"
	"github.com/VinciYan/tileserv/pkg/logger"
	"github.com/VinciYan/tileserv/pkg/telemetry"
	"github.com/gin-gonic/gin"
)

func Run(cfg *config.Config) {
	// Initialize logger
	l := logger.NewZapLogger(cfg.Logger)
	defer l.Sync()

	l.Info("starting tileserv", "config", cfg)

	// Initialize OpenTelemetry if enabled
	var shutdownTelemetry func(context.Context) error
	if cfg.Telemetry.Enabled {
		var err error
		shutdownTelemetry, err = telemetry.InitTracer(telemetry.Config{
			ServiceName:    cfg.Telemetry.ServiceName,
			ServiceVersion: cfg.Telemetry.ServiceVersion,
			Environment:    cfg.Telemetry.Environment,
			OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		}, l)
		if err != nil {
			l.Fatal("failed to initialize telemetry", "error", err)
		}
		defer func() {
			if err := shutdownTelemetry(context.Background()); err != nil {
				l.Error("failed to shutdown telemetry", "error", err)
			}
		}()
		l.Info("telemetry initialized", "service", cfg.Telemetry.ServiceName)
	}

	// Initialize tile store
	tileStore, tileSource, err := newTileStore(cfg, l)
	if err != nil {
		l.Fatal("failed to initialize tile store", "error", err)
	}
	if closer, ok := tileStore.(io.Closer); ok {
		defer closer.Close()
	}

	// Initialize usecase
	tileUseCase := usecase.NewTileUseCase(tileStore, l)

	// Initialize handler
	h := handler.NewHandler(tileUseCase)

	// Initialize router
	gin.SetMode(gin.ReleaseMode)
	router := v1.NewRouter(h, l, cfg.Telemetry.Enabled)

	// Initialize HTTP server
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.Server.ReadTimeout,
		WriteTimeout: cfg.HTTP.Server.WriteTimeout,
		IdleTimeout:  cfg.HTTP.Server.IdleTimeout,
	}

	fmt.Printf("Server starting on http://%s:%s\n", cfg.HTTP.Server.Host, cfg.HTTP.Server.Port)
	fmt.Printf("Serving tiles from: %s\n", tileSource)

	// Start server
	go func() {
		l.Info("starting http server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		l.Fatal("server forced to shutdown", "error", err)
	}

	l.Info("server stopped")
}

func newTileStore(cfg *config.Config, l logger.Logger) (store.TileStore, string, error) {
	switch cfg.Tiles.Backend {
	case config.BackendMBTiles:
		s, err := store.NewMBTilesStore(cfg.Tiles.MBTilesPath, l)
		if err != nil {
			return nil, "", err
		}
		return s, cfg.Tiles.MBTilesPath, nil
	default:
		return store.NewFilesystemStore(cfg.Tiles.Dir, l), cfg.Tiles.Dir, nil
	}
}
