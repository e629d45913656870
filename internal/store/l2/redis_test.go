package l2

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"notice-cache/internal/config"
	"notice-cache/internal/interfaces/mock"
)

func testRedisConfig() *config.RedisConfig {
	return &config.RedisConfig{
		ConnectTimeout: config.Duration(time.Second),
		ReadTimeout:    config.Duration(time.Second),
		SendTimeout:    config.Duration(time.Second),
	}
}

func TestRedisStore_Get_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockRedisClient(ctrl)
	store := New(testRedisConfig(), client, zap.NewNop())

	client.EXPECT().Get(gomock.Any(), "k").Return(redis.NewStringResult("v", nil))

	value, found, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", value)
}

func TestRedisStore_Get_Absent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockRedisClient(ctrl)
	store := New(testRedisConfig(), client, zap.NewNop())

	client.EXPECT().Get(gomock.Any(), "k").Return(redis.NewStringResult("", redis.Nil))

	_, found, err := store.Get(context.Background(), "k")
	require.NoError(t, err, "a missing key is not an error")
	assert.False(t, found)
}

func TestRedisStore_Get_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockRedisClient(ctrl)
	store := New(testRedisConfig(), client, zap.NewNop())

	client.EXPECT().Get(gomock.Any(), "k").Return(redis.NewStringResult("", errors.New("connection refused")))

	_, found, err := store.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, found)
}

func TestRedisStore_Set_NoExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockRedisClient(ctrl)
	store := New(testRedisConfig(), client, zap.NewNop())

	// Entries live until explicitly cleared; staleness is the cache
	// layer's concern.
	client.EXPECT().Set(gomock.Any(), "k", "v", time.Duration(0)).Return(redis.NewStatusResult("OK", nil))

	require.NoError(t, store.Set(context.Background(), "k", "v"))
}

func TestRedisStore_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockRedisClient(ctrl)
	store := New(testRedisConfig(), client, zap.NewNop())

	client.EXPECT().Del(gomock.Any(), "k").Return(redis.NewIntResult(1, nil))

	require.NoError(t, store.Remove(context.Background(), "k"))
}

func TestRedisStore_RemoveMany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockRedisClient(ctrl)
	store := New(testRedisConfig(), client, zap.NewNop())

	client.EXPECT().Del(gomock.Any(), "a", "b").Return(redis.NewIntResult(2, nil))

	require.NoError(t, store.RemoveMany(context.Background(), []string{"a", "b"}))
}

func TestRedisStore_RemoveMany_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockRedisClient(ctrl)
	store := New(testRedisConfig(), client, zap.NewNop())

	// No Del call expected
	require.NoError(t, store.RemoveMany(context.Background(), nil))
}

func TestRedisStore_ListKeys_MultipleScanPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockRedisClient(ctrl)
	store := New(testRedisConfig(), client, zap.NewNop())

	client.EXPECT().Scan(gomock.Any(), uint64(0), "*", int64(100)).
		Return(redis.NewScanCmdResult([]string{"a", "b"}, 7, nil))
	client.EXPECT().Scan(gomock.Any(), uint64(7), "*", int64(100)).
		Return(redis.NewScanCmdResult([]string{"c"}, 0, nil))

	keys, err := store.ListKeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestRedisStore_ListKeys_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockRedisClient(ctrl)
	store := New(testRedisConfig(), client, zap.NewNop())

	client.EXPECT().Scan(gomock.Any(), uint64(0), "*", int64(100)).
		Return(redis.NewScanCmdResult(nil, 0, errors.New("connection refused")))

	_, err := store.ListKeys(context.Background())
	assert.Error(t, err)
}
