package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"blogicum/internal/api/config"
	"blogicum/internal/pkg/logger"
)

var Rdb *redis.Client

// InitRedis 初始化 Redis 客户端
func InitRedis(cfg *config.Config) error {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	Rdb.AddHook(logger.NewRedisLogger())

	if err := Rdb.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("连接 Redis 失败: %w", err)
	}

	return nil
}

// GetRdbClient 获取 Redis 客户端实例
func GetRdbClient() *redis.Client {
	return Rdb
}
