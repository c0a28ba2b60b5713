package di

import (
	"context"
	"errors"

	"hotelier/infras/kafka"
	"hotelier/infras/postgres"
	"hotelier/transport/http"

	goRedis "github.com/redis/go-redis/v9"
)

// provideHealthFunc pings every backing store the API depends on.
func provideHealthFunc(db *postgres.Connection, redisClient *goRedis.Client) http.HealthFunc {
	return func(ctx context.Context) error {
		if err := db.Write.PingContext(ctx); err != nil {
			return err
		}

		if err := db.Read.PingContext(ctx); err != nil {
			return err
		}

		return redisClient.Ping(ctx).Err()
	}
}

// provideCleanupFunc closes the connections that buffer work. The Kafka
// writer flushes pending batches on Close.
func provideCleanupFunc(broker kafka.Client, redisClient *goRedis.Client) http.CleanupFunc {
	return func() error {
		return errors.Join(broker.Close(), redisClient.Close())
	}
}
