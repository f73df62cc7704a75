package cache

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// TotalsCache lê os totais correntes por número que o ledger-worker mantém
// em hashes Redis. Caminho rápido de consulta: não toca o Postgres.
type TotalsCache struct{ R *redis.Client }

func NewTotals(r *redis.Client) *TotalsCache { return &TotalsCache{R: r} }

// ledgerKey tem que casar com o formato escrito pelo ledger-worker
func ledgerKey(chatID string) string { return "ledger:" + chatID }

// Totals retorna número -> total apostado no chat. Hash inexistente vira
// mapa vazio; campo com valor não numérico é ignorado.
func (c *TotalsCache) Totals(ctx context.Context, chatID string) (map[string]int64, error) {
	raw, err := c.R.HGetAll(ctx, ledgerKey(chatID)).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(raw))
	for number, v := range raw {
		total, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		out[number] = total
	}
	return out, nil
}
