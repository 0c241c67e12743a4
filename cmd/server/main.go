package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ctchen222/Five-In-A-Row/internal/api/controller"
	"ctchen222/Five-In-A-Row/internal/api/service"
	"ctchen222/Five-In-A-Row/internal/bot"
	"ctchen222/Five-In-A-Row/internal/config"
	"ctchen222/Five-In-A-Row/internal/db"
	"ctchen222/Five-In-A-Row/internal/logger"
	"ctchen222/Five-In-A-Row/internal/repository"
	"ctchen222/Five-In-A-Row/internal/server"
	"ctchen222/Five-In-A-Row/internal/telemetry"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, telemetry.Options{
		Endpoint: cfg.OtelEndpoint,
		Stdout:   cfg.TraceStdout,
	})
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init(cfg.SlogLevel())

	var opts []bot.Option
	if cfg.RedisAddr != "" {
		rdb, err := db.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			slog.Error("failed to initialize redis", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()
		opts = append(opts, bot.WithCache(repository.NewSearchCache(rdb, cfg.CacheTTL)))
		slog.Info("search cache enabled", "ttl", cfg.CacheTTL)
	}

	engine, err := bot.NewEngine(cfg.SearchDepth, opts...)
	if err != nil {
		slog.Error("failed to create engine", "error", err)
		os.Exit(1)
	}

	engineController := controller.NewEngineController(service.NewEngineService(engine))

	if cfg.SlogLevel() > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := server.NewServer(engineController)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Engine(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("http server started", "addr", cfg.HTTPAddr, "search_depth", cfg.SearchDepth)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server stopped with error", "error", err)
		return
	}
	slog.Info("Server exiting")
}
