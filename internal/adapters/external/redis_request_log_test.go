package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"toolkitaccess.app/internal/config"
	"toolkitaccess.app/internal/ports"
	"toolkitaccess.app/pkg/errors"
)

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	redisConfig := &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		Password:     "",
		DB:           0,
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
		Key:          "toolkit:access_requests",
	}

	return mockRedis, redisConfig
}

func TestNewRedisRequestLogAdapter(t *testing.T) {
	tests := []struct {
		name        string
		config      func(t *testing.T) *config.RedisConfig
		expectError bool
		errorType   errors.ErrorType
	}{
		{
			name:        "NilConfig",
			config:      func(t *testing.T) *config.RedisConfig { return nil },
			expectError: true,
			errorType:   errors.ErrorTypeConfiguration,
		},
		{
			name: "EmptyKey",
			config: func(t *testing.T) *config.RedisConfig {
				_, cfg := setupMockRedis(t)
				cfg.Key = ""
				return cfg
			},
			expectError: true,
			errorType:   errors.ErrorTypeConfiguration,
		},
		{
			name: "ValidConfig",
			config: func(t *testing.T) *config.RedisConfig {
				_, cfg := setupMockRedis(t)
				return cfg
			},
		},
		{
			name: "InvalidAddress",
			config: func(t *testing.T) *config.RedisConfig {
				return &config.RedisConfig{
					Addr:         "invalid:address:port",
					DialTimeout:  1,
					ReadTimeout:  1,
					WriteTimeout: 1,
					Key:          "toolkit:access_requests",
				}
			},
			expectError: true,
			errorType:   errors.ErrorTypeDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, err := NewRedisRequestLogAdapter(tt.config(t))

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, adapter)
				var appErr *errors.AppError
				if assert.ErrorAs(t, err, &appErr) {
					assert.Equal(t, tt.errorType, appErr.Type)
				}
				return
			}

			require.NoError(t, err)
			assert.NoError(t, adapter.Close())
		})
	}
}

func TestRedisRequestLogAdapter_AppendAndList(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisRequestLogAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	ctx := context.Background()

	list, err := adapter.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	first := ports.AccessRequestData{Name: "Ann Lee", Username: "annlee", Role: "Analyst", Page: "onboarding"}
	second := ports.AccessRequestData{Name: "Bob", Username: "bob", Role: "Unknown", Page: "Unknown"}
	require.NoError(t, adapter.Append(ctx, first))
	require.NoError(t, adapter.Append(ctx, second))

	list, err = adapter.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []ports.AccessRequestData{first, second}, list)

	items, err := mockRedis.List("toolkit:access_requests")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.JSONEq(t, `{"name":"Ann Lee","username":"annlee","role":"Analyst","page":"onboarding"}`, items[0])

	assert.Equal(t, time.Duration(0), mockRedis.TTL("toolkit:access_requests"))
}

func TestRedisRequestLogAdapter_TTL(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)
	redisConfig.TTLMinutes = 10

	adapter, err := NewRedisRequestLogAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	ctx := context.Background()
	require.NoError(t, adapter.Append(ctx, ports.AccessRequestData{Name: "Ann", Username: "ann"}))

	assert.Equal(t, 10*time.Minute, mockRedis.TTL("toolkit:access_requests"))

	mockRedis.FastForward(11 * time.Minute)

	list, err := adapter.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRedisRequestLogAdapter_CorruptEntry(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisRequestLogAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	_, err = mockRedis.Push("toolkit:access_requests", "not json")
	require.NoError(t, err)

	list, err := adapter.List(context.Background())

	assert.Nil(t, list)
	assert.True(t, errors.IsDatabaseError(err))
}

func TestRedisRequestLogAdapter_ServerDown(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisRequestLogAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	mockRedis.Close()
	ctx := context.Background()

	assert.True(t, errors.IsDatabaseError(adapter.Append(ctx, ports.AccessRequestData{Name: "Ann", Username: "ann"})))
	_, err = adapter.List(ctx)
	assert.True(t, errors.IsDatabaseError(err))
	assert.True(t, errors.IsDatabaseError(adapter.Ping(ctx)))
}

func TestRedisRequestLogAdapter_Ping(t *testing.T) {
	_, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisRequestLogAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	assert.NoError(t, adapter.Ping(context.Background()))
}
