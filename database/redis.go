package database

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// RedisOptions selects the redis database of the visit counter
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// OpenRedisConnection pools the connection to the store
func OpenRedisConnection(opts RedisOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

// CloseRedisConnection closes the connection to the store
func CloseRedisConnection(client *redis.Client) error {
	return client.Close()
}
