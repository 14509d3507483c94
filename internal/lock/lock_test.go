package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_TryAcquire(t *testing.T) {
	client, mock := redismock.NewClientMock()
	locker := New(client)
	ctx := context.Background()

	mock.Regexp().ExpectSetNX("accrual:run:2024-01-10", `.+`, time.Hour).SetVal(true)
	lease, err := locker.TryAcquire(ctx, "accrual:run:2024-01-10", time.Hour)
	require.NoError(t, err)
	require.NotNil(t, lease)

	mock.Regexp().ExpectSetNX("accrual:run:2024-01-10", `.+`, time.Hour).SetVal(false)
	_, err = locker.TryAcquire(ctx, "accrual:run:2024-01-10", time.Hour)
	assert.ErrorIs(t, err, ErrNotAcquired)

	mock.Regexp().ExpectSetNX("accrual:run:2024-01-10", `.+`, time.Hour).SetErr(errors.New("connection refused"))
	_, err = locker.TryAcquire(ctx, "accrual:run:2024-01-10", time.Hour)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLease_Release(t *testing.T) {
	client, mock := redismock.NewClientMock()
	lease := &Lease{client: client, key: "accrual:run:2024-01-10", token: "owner"}

	mock.ExpectEval(unlockScript, []string{"accrual:run:2024-01-10"}, "owner").SetVal(int64(1))
	require.NoError(t, lease.Release(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
