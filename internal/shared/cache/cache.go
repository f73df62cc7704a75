package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// connectTimeout limita o ping inicial; os serviços preferem falhar rápido
// no boot a esperar um Redis fora do ar
const connectTimeout = 2 * time.Second

func ConnectRedis(addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
