// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/taibuivan/boardbuddy/internal/platform/redis"
)

// envRedisURL names the variable that enables the Redis integration tests.
const envRedisURL = "TEST_REDIS_URL"

func newRevocationList(t *testing.T) *redisstore.RevocationList {
	t.Helper()

	url := os.Getenv(envRedisURL)
	if url == "" {
		t.Skipf("%s not set; skipping Redis integration test", envRedisURL)
	}

	client, err := redisstore.NewClient(context.Background(), url, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return redisstore.NewRevocationList(client)
}

func TestRevocationList(t *testing.T) {
	list := newRevocationList(t)
	ctx := context.Background()

	live, expired, unknown := uuid.NewString(), uuid.NewString(), uuid.NewString()

	require.NoError(t, list.Revoke(ctx, live, time.Now().Add(time.Minute)))
	require.NoError(t, list.Revoke(ctx, expired, time.Now().Add(-time.Minute)))

	tests := []struct {
		name    string
		tokenID string
		want    bool
	}{
		{"revoked", live, true},
		{"already_expired_is_ignored", expired, false},
		{"never_revoked", unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			revoked, err := list.IsRevoked(ctx, tt.tokenID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, revoked)
		})
	}
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := redisstore.NewClient(context.Background(), "://nope", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
