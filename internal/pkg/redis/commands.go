package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// SetWithExpiration 设置带过期时间的键值
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 获取键对应的值，键不存在时返回空串
func GetValue(ctx context.Context, key string) (string, error) {
	val, err := Rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

// DeleteKey 删除键
func DeleteKey(ctx context.Context, key string) error {
	return Rdb.Del(ctx, key).Err()
}

// PushWithExpiration 向列表尾部追加元素并刷新过期时间
func PushWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	pipe := Rdb.TxPipeline()
	pipe.RPush(ctx, key, value)
	pipe.Expire(ctx, key, expiration)
	_, err := pipe.Exec(ctx)
	return err
}

// PopAll 取出列表全部元素并删除该键
func PopAll(ctx context.Context, key string) ([]string, error) {
	pipe := Rdb.TxPipeline()
	rangeCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	return rangeCmd.Val(), nil
}
