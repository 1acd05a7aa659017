package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/project-tracker/config"
	httpapi "github.com/GoSim-25-26J-441/project-tracker/internal/api/http"
	"github.com/GoSim-25-26J-441/project-tracker/internal/bootstrap"
	"github.com/GoSim-25-26J-441/project-tracker/internal/logging"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/board"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/realtime"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/report"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/state"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.LogLevel, cfg.App.Environment)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := state.New()
	b := board.New(store)
	hub := realtime.NewHub(store)

	var ping httpapi.Pinger
	if cfg.Redis.Enabled() {
		client, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Fatal("redis unavailable", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		defer client.Close()

		pub := realtime.NewPublisher(client, cfg.Redis.Channel, logger)
		pub.Attach(store)
		go pub.Run(ctx)

		ping = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		logger.Info("publishing snapshots", zap.String("channel", pub.Channel()))
	}

	if cfg.Report.Schedule != "" {
		sched := report.NewScheduler(store, logger)
		if err := sched.Start(cfg.Report.Schedule); err != nil {
			logger.Fatal("report scheduler", zap.Error(err))
		}
		defer sched.Stop()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: cfg.App.ServiceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		RateRPS:     cfg.RateLimit.RPS,
		RateBurst:   cfg.RateLimit.Burst,
		Board:       b,
		Hub:         hub,
		Ping:        ping,
		Log:         logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		// Cancels open streams on shutdown.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
