package ledger

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/twod-bot-poc/pkg/contracts/events"
)

// RedisLedger mantém totais correntes por (chat, número) em hashes Redis.
// O bot-service lê esses hashes no endpoint de totais do chat, sem bater
// no Postgres.
type RedisLedger struct {
	Client *redis.Client
}

func NewRedisLedger(c *redis.Client) *RedisLedger {
	return &RedisLedger{Client: c}
}

// mapping define o contrato do ledger compartilhado com o leitor:
// hash "ledger:<chatID>", campo = número apostado, incremento = valor.
func mapping(e events.BetRecorded) (key, field string, incr int64) {
	return "ledger:" + e.ChatID, e.Number, e.Amount
}

// Apply incrementa o total do número apostado no hash do chat
func (l *RedisLedger) Apply(ctx context.Context, e events.BetRecorded) error {
	k, f, n := mapping(e)
	return l.Client.HIncrBy(ctx, k, f, n).Err()
}
