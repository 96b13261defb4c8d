package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stockwatch/internal/models"
)

type CacheService interface {
	// GetAlertReport returns the cached report for the key, or (nil, nil) on
	// a cache miss.
	GetAlertReport(ctx context.Context, key string) (*models.LowStockReport, error)
	SetAlertReport(ctx context.Context, key string, report *models.LowStockReport, ttl time.Duration) error
	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis://host:port as well as bare host:port.
	parsedAddr := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://")

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", err, parsedAddr)
	}

	return &redisCacheService{client: client}
}

func (r *redisCacheService) GetAlertReport(ctx context.Context, key string) (*models.LowStockReport, error) {
	data, err := r.client.Get(ctx, cacheKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var report models.LowStockReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *redisCacheService) SetAlertReport(ctx context.Context, key string, report *models.LowStockReport, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cacheKey(key), data, ttl).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func cacheKey(key string) string {
	return fmt.Sprintf("stockwatch:%s", key)
}
