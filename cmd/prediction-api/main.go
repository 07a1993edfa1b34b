package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	phttp "github.com/radieske/nba-predictor-api/internal/prediction-api/http"
	pmetrics "github.com/radieske/nba-predictor-api/internal/prediction-api/metrics"
	"github.com/radieske/nba-predictor-api/internal/prediction-api/mlclient"
	"github.com/radieske/nba-predictor-api/internal/prediction-api/predictor"
	"github.com/radieske/nba-predictor-api/internal/prediction-api/producer"
	"github.com/radieske/nba-predictor-api/internal/prediction-api/pubsub"
	"github.com/radieske/nba-predictor-api/internal/shared/config"
	"github.com/radieske/nba-predictor-api/internal/shared/kafka"
	"github.com/radieske/nba-predictor-api/internal/shared/logger"
	"github.com/radieske/nba-predictor-api/internal/shared/metrics"
	"github.com/radieske/nba-predictor-api/internal/shared/rediscli"
)

func main() {
	// carrega config
	cfg := config.Load()

	// inicia logger
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	log.Info("starting service",
		zap.String("ml_service_url", cfg.MLServiceURL),
		zap.Duration("predictor_timeout", cfg.PredictorTimeout),
	)

	m := pmetrics.New(prometheus.DefaultRegisterer)

	// sinks de eventos opcionais (Kafka e/ou Redis Pub/Sub)
	fan := &producer.Fanout{OnError: m.ObservePublishError}

	if cfg.KafkaBrokers != "" {
		writer := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicPredictions)
		defer writer.Close()
		fan.Add("kafka", producer.NewKafkaPublisher(writer, cfg.TopicPredictions))
		log.Info("kafka writer ready", zap.String("topic", cfg.TopicPredictions))
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		rdb, err = rediscli.Connect(ctx, cfg.RedisAddr)
		cancel()
		if err != nil {
			log.Fatal("failed to connect redis", zap.Error(err))
		}
		defer rdb.Close()
		fan.Add("redis", pubsub.NewRedisBroadcaster(rdb, cfg.RedisPubSubChannel))
		log.Info("redis connected", zap.String("channel", cfg.RedisPubSubChannel))
	}

	// deps
	svc := predictor.NewService(log, mlclient.New(cfg.MLServiceURL, cfg.PredictorTimeout), nil)
	if fan.Len() > 0 {
		svc.Publisher = fan
	}
	svc.OnMLCall = m.ObserveMLCall
	svc.OnFallback = m.ObserveFallback

	api := phttp.NewServer(log, svc)
	api.OnOutcome = m.ObserveOutcome

	// metrics/health
	metricsSrv := metrics.StartMetricsServer(log, cfg.MetricsPort, func(ctx context.Context) error {
		if rdb != nil {
			if err := rdb.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("redis: %w", err)
			}
		}
		return nil
	})

	// HTTP público
	apiSrv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = apiSrv.Shutdown(sctx)
		_ = metricsSrv.Shutdown(sctx)
	}()

	log.Info("prediction-api listening", zap.String("addr", apiSrv.Addr))
	if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("api", zap.Error(err))
	}
	log.Info("prediction-api stopped")
}
