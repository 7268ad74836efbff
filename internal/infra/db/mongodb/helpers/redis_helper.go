package helpers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	redisClients     = make(map[string]*redis.Client)
	redisClientMutex sync.Mutex
)

var RedisTimeout = 5 * time.Second

// RedisHelper returns the client for connectionUrl, connecting on first use.
func RedisHelper(connectionUrl string, log *logrus.Logger) (*redis.Client, error) {
	redisClientMutex.Lock()
	defer redisClientMutex.Unlock()

	if client, exists := redisClients[connectionUrl]; exists {
		return client, nil
	}

	opt, err := redis.ParseURL(connectionUrl)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opt.PoolSize = 200
	opt.MinIdleConns = 20
	opt.ConnMaxIdleTime = 200 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), RedisTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	redisClients[connectionUrl] = client

	log.WithField("addr", opt.Addr).Info("Connected to Redis")

	return client, nil
}

func DisconnectRedis(log *logrus.Logger) {
	redisClientMutex.Lock()
	defer redisClientMutex.Unlock()

	for url, client := range redisClients {
		if err := client.Close(); err != nil {
			log.WithError(err).Warn("error disconnecting from redis")
		} else {
			log.Debugf("Disconnected from Redis: %s", url)
		}
	}

	redisClients = make(map[string]*redis.Client)
}
