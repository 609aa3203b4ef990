// Package draft реализует восстановимый кэш черновиков бронирования в Redis.
// Черновик перезаписывается после каждой мутации и удаляется при сбросе
// или успешном коммите.
package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
)

// keyPrefix пространство имен ключей черновиков
const keyPrefix = "partylab:draft:"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Cache кэш черновиков поверх Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    Logger
}

// NewCache создает новый кэш черновиков
func NewCache(client *redis.Client, ttl time.Duration, log Logger) *Cache {
	return &Cache{client: client, ttl: ttl, log: log}
}

// Save сериализует черновик и перезаписывает его в кэше, продлевая TTL
func (c *Cache) Save(ctx context.Context, d *domain.BookingDraft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("%w: marshal draft %s: %v", ErrCacheUnavailable, d.SessionID, err)
	}

	if err := c.client.Set(ctx, keyPrefix+d.SessionID, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set draft %s: %v", ErrCacheUnavailable, d.SessionID, err)
	}

	return nil
}

// Load читает черновик из кэша. Поврежденный (неразбираемый) черновик
// отбрасывается и трактуется как отсутствующий - инициализация сессии
// не должна падать из-за мусора в кэше.
func (c *Cache) Load(ctx context.Context, sessionID string) (*domain.BookingDraft, error) {
	payload, err := c.client.Get(ctx, keyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get draft %s: %v", ErrCacheUnavailable, sessionID, err)
	}

	var d domain.BookingDraft
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		c.log.Warn("draft.cache: discarding corrupt draft %s: %v", sessionID, err)
		_ = c.client.Del(ctx, keyPrefix+sessionID).Err()
		return nil, ErrDraftNotFound
	}

	if d.SessionID == "" || !domain.IsValidStep(d.Step) {
		c.log.Warn("draft.cache: discarding inconsistent draft %s", sessionID)
		_ = c.client.Del(ctx, keyPrefix+sessionID).Err()
		return nil, ErrDraftNotFound
	}

	return &d, nil
}

// Clear удаляет черновик из кэша
func (c *Cache) Clear(ctx context.Context, sessionID string) error {
	if err := c.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("%w: del draft %s: %v", ErrCacheUnavailable, sessionID, err)
	}
	return nil
}
