package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

func TestRedis_GetSet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := New(client, "team:stats", time.Minute)
	ctx := context.Background()

	mock.ExpectSet("team:stats:7", []byte(`{"total":3,"active":2}`), time.Minute).SetVal("OK")
	require.NoError(t, c.Set(ctx, 7, stats{Total: 3, Active: 2}))

	mock.ExpectGet("team:stats:7").SetVal(`{"total":3,"active":2}`)
	var got stats
	ok, err := c.Get(ctx, 7, &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, stats{Total: 3, Active: 2}, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_GetMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := New(client, "team:stats", time.Minute)

	mock.ExpectGet("team:stats:8").RedisNil()
	var got stats
	ok, err := c.Get(context.Background(), 8, &got)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_GetCorruptEntry(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := New(client, "team:stats", time.Minute)

	mock.ExpectGet("team:stats:9").SetVal("not json")
	mock.ExpectDel("team:stats:9").SetVal(1)
	var got stats
	ok, err := c.Get(context.Background(), 9, &got)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_GetError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := New(client, "team:stats", time.Minute)

	mock.ExpectGet("team:stats:1").SetErr(errors.New("connection refused"))
	var got stats
	_, err := c.Get(context.Background(), 1, &got)
	assert.Error(t, err)
}

func TestRedis_Invalidate(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := New(client, "team:stats", time.Minute)

	mock.ExpectDel("team:stats:1", "team:stats:4").SetVal(2)
	require.NoError(t, c.Invalidate(context.Background(), 1, 4))
	require.NoError(t, c.Invalidate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNop(t *testing.T) {
	var c Nop
	ok, err := c.Get(context.Background(), 1, &stats{})
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.NoError(t, c.Set(context.Background(), 1, stats{}))
	assert.NoError(t, c.Invalidate(context.Background(), 1))
}
