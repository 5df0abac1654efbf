package flash

import (
	"context"
	"fmt"
	log "log/slog"
	"time"

	json "github.com/goccy/go-json"

	"blogicum/internal/pkg/consts"
	"blogicum/internal/pkg/redis"
)

const (
	LevelSuccess = "success"
	LevelError   = "error"

	noticeTTL = 30 * time.Minute
)

// Notice 一条待展示的提示消息，渲染后即被消费
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Store 提示消息的暂存层
type Store interface {
	Add(ctx context.Context, userID uint64, notice Notice) error
	Pop(ctx context.Context, userID uint64) ([]Notice, error)
}

type RedisStore struct{}

func NewRedisStore() *RedisStore {
	return &RedisStore{}
}

func (s *RedisStore) Add(ctx context.Context, userID uint64, notice Notice) error {
	payload, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("序列化提示消息失败: %w", err)
	}

	key := fmt.Sprintf("%s%d", consts.UserFlashKey, userID)
	return redis.PushWithExpiration(ctx, key, payload, noticeTTL)
}

func (s *RedisStore) Pop(ctx context.Context, userID uint64) ([]Notice, error) {
	key := fmt.Sprintf("%s%d", consts.UserFlashKey, userID)

	raw, err := redis.PopAll(ctx, key)
	if err != nil {
		return nil, err
	}

	notices := make([]Notice, 0, len(raw))
	for _, item := range raw {
		var n Notice
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			log.WarnContext(ctx, "skip malformed flash notice", "err", err)
			continue
		}
		notices = append(notices, n)
	}

	return notices, nil
}
