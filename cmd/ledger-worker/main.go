package main

import (
	"context"
	"encoding/json"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/twod-bot-poc/internal/ledger-worker/consumer"
	"github.com/radieske/twod-bot-poc/internal/ledger-worker/ledger"
	"github.com/radieske/twod-bot-poc/internal/ledger-worker/pubsub"
	sharedcache "github.com/radieske/twod-bot-poc/internal/shared/cache"
	"github.com/radieske/twod-bot-poc/internal/shared/config"
	skafka "github.com/radieske/twod-bot-poc/internal/shared/kafka"
	"github.com/radieske/twod-bot-poc/internal/shared/logger"
	"github.com/radieske/twod-bot-poc/internal/shared/metrics"
	"github.com/radieske/twod-bot-poc/pkg/contracts/events"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Redis: hashes do ledger + canal de broadcast
	redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer redisClient.Close()

	led := ledger.NewRedisLedger(redisClient)

	// Consumer Kafka (consumer group bet-ledger)
	reader := skafka.NewReader(cfg.KafkaBrokers, cfg.TopicBetRecorded, "bet-ledger")
	defer reader.Close()

	// Métricas Prometheus para monitoramento do processamento
	consumed := prometheus.NewCounter(prometheus.CounterOpts{Name: "ledger_messages_consumed_total", Help: "mensagens consumidas"})
	applied := prometheus.NewCounter(prometheus.CounterOpts{Name: "ledger_applies_total", Help: "incrementos aplicados no ledger"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "ledger_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(consumed, applied, errorsBy)

	// Broadcaster para o feed WebSocket do bot-service
	broadcaster := pubsub.NewRedisBroadcaster(redisClient)

	proc := &consumer.Processor{
		Log:        log,
		Reader:     reader,
		Ledger:     led,
		OnConsumed: func() { consumed.Inc() },
		OnApplied:  func() { applied.Inc() },
		OnError:    func(stage string) { errorsBy.WithLabelValues(stage).Inc() },

		// Após aplicar no ledger, repassa a aposta para o WS via Redis Pub/Sub
		OnAfterApply: func(ev events.BetRecorded) {
			msg := pubsub.WSUpdate{ChatID: ev.ChatID, Payload: ev}
			b, _ := json.Marshal(msg)

			ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := broadcaster.Publish(ctx, pubsub.ChannelBetBroadcast, b); err != nil {
				log.Warn("ws broadcast publish failed", zap.Error(err))
			}
		},
	}

	// Servidor HTTP para métricas e health check
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("ledger-worker started")
	if err := proc.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("processor stopped with error", zap.Error(err))
	}
	log.Info("ledger-worker stopped")
}
