// Package mock provides shared test doubles for the integration suite.
package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a process-wide client against an embedded miniredis.
// Scenarios share the server and flush it between runs.
func NewRedis() *redis.Client {
	redisConnOnce.Do(func() {
		redisConn = openRedisConn()
	})
	return redisConn
}

func openRedisConn() *redis.Client {
	miniRedis, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	return redis.NewClient(
		&redis.Options{
			Addr: miniRedis.Addr(),
		},
	)
}

// ClearRedis wipes every key, giving the next scenario an empty ledger.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
