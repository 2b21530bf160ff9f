package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-questions-api/internal/config"
)

func TestRedisOptions(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.RedisConfig
		wantAddrs []string
		wantErr   bool
	}{
		{
			name:      "single через Addr",
			cfg:       config.RedisConfig{Addr: "localhost:6379"},
			wantAddrs: []string{"localhost:6379"},
		},
		{
			name:      "single берёт первый адрес",
			cfg:       config.RedisConfig{Mode: "single", Addrs: []string{"a:6379", "b:6379"}},
			wantAddrs: []string{"a:6379"},
		},
		{
			name:      "cluster",
			cfg:       config.RedisConfig{Mode: "cluster", Addrs: []string{"a:6379", "b:6379"}},
			wantAddrs: []string{"a:6379", "b:6379"},
		},
		{
			name:    "sentinel без MasterName",
			cfg:     config.RedisConfig{Mode: "sentinel", Addrs: []string{"a:26379"}},
			wantErr: true,
		},
		{
			name:    "нет адресов",
			cfg:     config.RedisConfig{},
			wantErr: true,
		},
		{
			name:    "неизвестный режим",
			cfg:     config.RedisConfig{Mode: "ring", Addr: "a:6379"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := redisOptions(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddrs, opts.Addrs)
		})
	}
}

func TestRedisOptions_Backoff(t *testing.T) {
	opts, err := redisOptions(config.RedisConfig{Addr: "a:6379", MaxRetries: 3, MinRetryBackoff: 10, MaxRetryBackoff: 200})

	require.NoError(t, err)
	assert.Equal(t, 3, opts.MaxRetries)
	assert.Equal(t, 10*time.Millisecond, opts.MinRetryBackoff)
	assert.Equal(t, 200*time.Millisecond, opts.MaxRetryBackoff)
}
