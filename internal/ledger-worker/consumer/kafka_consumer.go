package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/twod-bot-poc/internal/ledger-worker/ledger"
	"github.com/radieske/twod-bot-poc/pkg/contracts/events"
)

// Processor consome eventos bet_recorded do Kafka e aplica no ledger Redis
// Callbacks de métricas podem ser usadas para monitoramento de cada etapa
type Processor struct {
	Log    *zap.Logger
	Reader *kafka.Reader
	Ledger *ledger.RedisLedger

	OnConsumed func()       // métricas (counter++)
	OnApplied  func()       // métricas
	OnError    func(string) // métricas por fase

	// OnAfterApply roda após o incremento do ledger (ex: broadcast p/ o WS)
	OnAfterApply func(events.BetRecorded)
}

// Run inicia o loop principal de consumo e processamento das mensagens Kafka
func (p *Processor) Run(ctx context.Context) error {
	for {
		m, err := p.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err() // encerra se o contexto for cancelado
			}
			p.Log.Warn("kafka read failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("read")
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if p.OnConsumed != nil {
			p.OnConsumed()
		}

		var ev events.BetRecorded
		if err := json.Unmarshal(m.Value, &ev); err != nil {
			p.Log.Warn("invalid message", zap.Error(err))
			if p.OnError != nil {
				p.OnError("decode")
			}
			continue
		}

		// Incrementa o total corrente do número no hash do chat
		if err := p.Ledger.Apply(ctx, ev); err != nil {
			p.Log.Warn("ledger apply failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("ledger")
			}
			continue
		}
		if p.OnApplied != nil {
			p.OnApplied()
		}

		if p.OnAfterApply != nil {
			p.OnAfterApply(ev)
		}
	}
}
