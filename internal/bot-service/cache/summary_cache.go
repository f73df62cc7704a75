package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Modos de relatório usados como sufixo de chave no cache.
const (
	ModeTotal       = "total"
	ModeUser        = "user"
	ModeMorning     = "am_total"
	ModeMorningUser = "am_user"
)

var modes = []string{ModeTotal, ModeUser, ModeMorning, ModeMorningUser}

// SummaryCache guarda relatórios já formatados por chat e modo.
type SummaryCache struct{ R *redis.Client }

func New(r *redis.Client) *SummaryCache { return &SummaryCache{R: r} }

func key(chatID, mode string) string { return "sum:" + chatID + ":" + mode }

func (c *SummaryCache) Get(ctx context.Context, chatID, mode string) (string, bool, error) {
	v, err := c.R.Get(ctx, key(chatID, mode)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (c *SummaryCache) Set(ctx context.Context, chatID, mode, report string, ttl time.Duration) error {
	return c.R.Set(ctx, key(chatID, mode), report, ttl).Err()
}

// Invalidate remove todos os modos do chat; chamado após cada inserção.
func (c *SummaryCache) Invalidate(ctx context.Context, chatID string) error {
	keys := make([]string, 0, len(modes))
	for _, m := range modes {
		keys = append(keys, key(chatID, m))
	}
	return c.R.Del(ctx, keys...).Err()
}
