package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/m04kA/SMC-TurfBooking/internal/api"
	"github.com/m04kA/SMC-TurfBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TurfBooking/internal/config"
	"github.com/m04kA/SMC-TurfBooking/internal/integrations/turfapi"
	adminService "github.com/m04kA/SMC-TurfBooking/internal/service/admin"
	sessionsService "github.com/m04kA/SMC-TurfBooking/internal/service/sessions"
	"github.com/m04kA/SMC-TurfBooking/pkg/logger"
	"github.com/m04kA/SMC-TurfBooking/pkg/metrics"
)

// rateLimiterIdle время простоя, после которого лимитер IP удаляется
const rateLimiterIdle = 10 * time.Minute

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TurfBooking...")
	log.Info("Configuration loaded from config.toml")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Инициализируем метрики. Если они выключены, сборщик пишет в отдельный реестр,
	// который никто не публикует.
	var (
		metricsCollector *metrics.Metrics
		httpMetrics      middleware.HTTPMetrics
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		httpMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		metricsCollector = metrics.NewWithRegistry(prometheus.NewRegistry(), "turf_booking")
	}

	// Инициализируем клиента API бронирования
	opts := []turfapi.Option{turfapi.WithMetrics(metricsCollector)}
	if cfg.TurfAPI.RateLimit > 0 {
		opts = append(opts, turfapi.WithRateLimit(cfg.TurfAPI.RateLimit, cfg.TurfAPI.Burst))
	}
	turfClient := turfapi.NewClient(
		cfg.TurfAPI.URL,
		time.Duration(cfg.TurfAPI.Timeout)*time.Second,
		log,
		opts...,
	)
	log.Info("Turf API client initialized (url=%s, timeout=%ds, rate_limit=%.1f)",
		cfg.TurfAPI.URL, cfg.TurfAPI.Timeout, cfg.TurfAPI.RateLimit)

	// Инициализируем сервисы
	sessionsSvc := sessionsService.NewService(
		turfClient,
		metricsCollector,
		time.Duration(cfg.Sessions.TTL)*time.Second,
		cfg.Sessions.MaxActive,
		log,
	)
	adminSvc := adminService.NewService(
		turfClient,
		time.Duration(cfg.Admin.SessionTTL)*time.Second,
		log,
	)

	// Фоновая очистка брошенных сессий визарда
	go sessionsSvc.Run(ctx, time.Duration(cfg.Sessions.SweepInterval)*time.Second)
	log.Info("Session sweeper started (ttl=%ds, interval=%ds)", cfg.Sessions.TTL, cfg.Sessions.SweepInterval)

	// Ограничение входящих запросов по IP
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		go func() {
			ticker := time.NewTicker(time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if n := limiter.Cleanup(rateLimiterIdle); n > 0 {
						log.Debug("Rate limiter: removed %d idle clients", n)
					}
				}
			}
		}()
		log.Info("Rate limit enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Настраиваем роутер
	r := api.NewRouter(api.Deps{
		Sessions:    sessionsSvc,
		Admin:       adminSvc,
		Logger:      log,
		Metrics:     httpMetrics,
		MetricsPath: cfg.Metrics.Path,
		RateLimiter: limiter,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи
	stop()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully (active sessions: %d)", sessionsSvc.Len())
}
