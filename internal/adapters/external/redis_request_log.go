package external

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"toolkitaccess.app/internal/config"
	"toolkitaccess.app/internal/ports"
	"toolkitaccess.app/pkg/errors"
)

// RedisRequestLogAdapter stores access requests as JSON items of one Redis list
type RedisRequestLogAdapter struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

type redisRequestEntry struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Page     string `json:"page"`
}

// NewRedisRequestLogAdapter connects to Redis and verifies the connection
func NewRedisRequestLogAdapter(config *config.RedisConfig) (*RedisRequestLogAdapter, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}
	if config.Key == "" {
		return nil, errors.NewConfigurationError("redis requests key cannot be empty", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewDatabaseError("failed to connect to Redis", err)
	}

	return &RedisRequestLogAdapter{
		client: client,
		key:    config.Key,
		ttl:    time.Duration(config.TTLMinutes) * time.Minute,
	}, nil
}

// Append pushes the entry to the tail of the list and refreshes its expiry when one is set
func (r *RedisRequestLogAdapter) Append(ctx context.Context, data ports.AccessRequestData) error {
	payload, err := json.Marshal(redisRequestEntry{
		Name:     data.Name,
		Username: data.Username,
		Role:     data.Role,
		Page:     data.Page,
	})
	if err != nil {
		return errors.NewDatabaseError("failed to encode access request", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, r.key, payload)
		if r.ttl > 0 {
			pipe.Expire(ctx, r.key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return errors.NewDatabaseError("redis rpush failed", err)
	}
	return nil
}

// List returns every entry in insertion order
func (r *RedisRequestLogAdapter) List(ctx context.Context) ([]ports.AccessRequestData, error) {
	items, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, errors.NewDatabaseError("redis lrange failed", err)
	}

	out := make([]ports.AccessRequestData, 0, len(items))
	for _, item := range items {
		var entry redisRequestEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, errors.NewDatabaseError("failed to decode access request", err)
		}
		out = append(out, ports.AccessRequestData{
			Name:     entry.Name,
			Username: entry.Username,
			Role:     entry.Role,
			Page:     entry.Page,
		})
	}
	return out, nil
}

// Ping checks the Redis connection
func (r *RedisRequestLogAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewDatabaseError("redis ping failed", err)
	}
	return nil
}

// Close closes the Redis connection
func (r *RedisRequestLogAdapter) Close() error {
	return r.client.Close()
}
