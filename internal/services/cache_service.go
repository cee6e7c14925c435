package services

import (
	"context"
	"fmt"
	"time"

	"bhandara/internal/utils"
	"bhandara/pkg/cache"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CacheService is the slice of cache behavior the event and feedback
// services need. Misses and backend failures are treated the same by
// callers; the cache is never authoritative.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
}

type redisCacheService struct {
	cache *cache.RedisCache
}

func NewCacheService(redisCache *cache.RedisCache) CacheService {
	return &redisCacheService{cache: redisCache}
}

func (s *redisCacheService) Get(ctx context.Context, key string, dest interface{}) error {
	return s.cache.Get(ctx, key, dest)
}

func (s *redisCacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return s.cache.Set(ctx, key, value, expiration)
}

func (s *redisCacheService) Delete(ctx context.Context, keys ...string) error {
	return s.cache.Delete(ctx, keys...)
}

func (s *redisCacheService) DeletePattern(ctx context.Context, pattern string) error {
	_, err := s.cache.DeletePattern(ctx, pattern)
	return err
}

func eventCacheKey(id primitive.ObjectID) string {
	return utils.EventCachePrefix + id.Hex()
}

func eventListCacheKey(status string, page, pageSize int) string {
	return fmt.Sprintf("events:list:%s:%d:%d", status, page, pageSize)
}
