package accrual

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/teamvest/internal/lock"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestLockKey(t *testing.T) {
	assert.Equal(t, "accrual:run:2024-05-20", LockKey(runDay))
}

func TestScheduler_Tick(t *testing.T) {
	t.Run("runs sweep and accrual under the lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := NewMockRunner(ctrl)
		client, mock := redismock.NewClientMock()

		runner.EXPECT().Today().Return(runDay)
		mock.Regexp().ExpectSetNX("accrual:run:2024-05-20", `.+`, time.Hour).SetVal(true)
		runner.EXPECT().CompleteExpired(gomock.Any()).Return(int64(2), nil)
		runner.EXPECT().RunDailyAccrual(gomock.Any(), TriggerSchedule).Return(&Summary{}, nil)
		mock.Regexp().ExpectEval(`.+`, []string{"accrual:run:2024-05-20"}, `.+`).SetVal(int64(1))

		s := NewScheduler(runner, lock.New(client), time.Hour)
		assert.True(t, s.Tick(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips when another replica holds the lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := NewMockRunner(ctrl)
		client, mock := redismock.NewClientMock()

		runner.EXPECT().Today().Return(runDay)
		mock.Regexp().ExpectSetNX("accrual:run:2024-05-20", `.+`, time.Hour).SetVal(false)

		s := NewScheduler(runner, lock.New(client), time.Hour)
		assert.False(t, s.Tick(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips when redis is unreachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := NewMockRunner(ctrl)
		client, mock := redismock.NewClientMock()

		runner.EXPECT().Today().Return(runDay)
		mock.Regexp().ExpectSetNX("accrual:run:2024-05-20", `.+`, time.Hour).SetErr(errors.New("connection refused"))

		s := NewScheduler(runner, lock.New(client), time.Hour)
		assert.False(t, s.Tick(context.Background()))
	})

	t.Run("runs without a locker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := NewMockRunner(ctrl)
		runner.EXPECT().CompleteExpired(gomock.Any()).Return(int64(0), errors.New("timeout"))
		runner.EXPECT().RunDailyAccrual(gomock.Any(), TriggerSchedule).Return(nil, errors.New("timeout"))

		s := NewScheduler(runner, nil, time.Hour)
		assert.False(t, s.Tick(context.Background()))
	})
}

func TestScheduler_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := NewMockRunner(ctrl)
	ran := make(chan struct{}, 1)
	runner.EXPECT().CompleteExpired(gomock.Any()).Return(int64(0), nil).AnyTimes()
	runner.EXPECT().RunDailyAccrual(gomock.Any(), TriggerSchedule).DoAndReturn(func(context.Context, string) (*Summary, error) {
		select {
		case ran <- struct{}{}:
		default:
		}
		return &Summary{}, nil
	}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	s := NewScheduler(runner, nil, time.Hour)
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	<-ran
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
