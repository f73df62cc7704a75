package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	botcache "github.com/radieske/twod-bot-poc/internal/bot-service/cache"
	bothttp "github.com/radieske/twod-bot-poc/internal/bot-service/http"
	kpub "github.com/radieske/twod-bot-poc/internal/bot-service/producer"
	"github.com/radieske/twod-bot-poc/internal/bot-service/repo"
	"github.com/radieske/twod-bot-poc/internal/bot-service/telegram"
	"github.com/radieske/twod-bot-poc/internal/bot-service/ws"
	sharedcache "github.com/radieske/twod-bot-poc/internal/shared/cache"
	"github.com/radieske/twod-bot-poc/internal/shared/config"
	"github.com/radieske/twod-bot-poc/internal/shared/db"
	skafka "github.com/radieske/twod-bot-poc/internal/shared/kafka"
	"github.com/radieske/twod-bot-poc/internal/shared/logger"
	"github.com/radieske/twod-bot-poc/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	log, _ := logger.New(cfg.ServiceName, cfg.Env)
	defer log.Sync()

	// Postgres
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg", zap.Error(err))
	}
	defer pg.Close()

	// Redis
	rdb, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()

	// Kafka writer (topic bet_recorded)
	writer := skafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetRecorded)
	defer writer.Close()

	// deps
	repository := repo.NewPostgres(pg)
	publ := kpub.NewKafkaPublisher(writer, cfg.TopicBetRecorded)
	tg := telegram.New(cfg.TelegramAPIBase, cfg.TelegramToken)
	sumCache := botcache.New(rdb)
	totals := botcache.NewTotals(rdb)

	// hub do feed ao vivo, alimentado pelo ledger-worker via Redis Pub/Sub
	hub := ws.NewHub(func(r *http.Request) bool { return true })
	wsCtx, wsCancel := context.WithCancel(context.Background())
	defer wsCancel()
	ws.StartRedisSubscriber(wsCtx, rdb, hub)

	// Métricas Prometheus do fluxo do bot
	updates := prometheus.NewCounter(prometheus.CounterOpts{Name: "bot_updates_total", Help: "updates recebidos no webhook"})
	betsStored := prometheus.NewCounter(prometheus.CounterOpts{Name: "bot_bets_recorded_total", Help: "apostas persistidas"})
	summaries := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "bot_summaries_total", Help: "resumos servidos por modo"}, []string{"mode"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "bot_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(updates, betsStored, summaries, errorsBy)

	api := bothttp.NewServer(log, repository, tg, publ, sumCache, totals, hub)
	api.OnUpdate = func() { updates.Inc() }
	api.OnBets = func(n int) { betsStored.Add(float64(n)) }
	api.OnSummary = func(mode string) { summaries.WithLabelValues(mode).Inc() }
	api.OnError = func(stage string) { errorsBy.WithLabelValues(stage).Inc() }

	// metrics/health em porta separada
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return fmt.Errorf("pg: %w", err)
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		return nil
	})

	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	log.Info("bot-service listening", zap.String("addr", apiSrv.Addr))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
