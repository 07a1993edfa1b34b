package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	simhttp "github.com/radieske/nba-predictor-api/internal/ml-simulator/http"
	"github.com/radieske/nba-predictor-api/internal/shared/config"
	"github.com/radieske/nba-predictor-api/internal/shared/logger"
	"github.com/radieske/nba-predictor-api/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	s := simhttp.NewServer(log, cfg.SimErrorRate, rand.Float64, prometheus.DefaultRegisterer)

	// ==== MUX DE MÉTRICAS (/healthz, /metrics)
	metricsSrv := metrics.StartMetricsServer(log, cfg.MetricsPort, nil)

	// ==== HTTP principal: POST /predict
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
		_ = metricsSrv.Shutdown(sctx)
	}()

	log.Info("ml simulator running",
		zap.String("addr", srv.Addr),
		zap.Float64("error_rate", cfg.SimErrorRate),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("ml simulator failed", zap.Error(err))
	}
}
