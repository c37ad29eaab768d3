package workers

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/mock"
)

func TestCleanupWorker_Purge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockProtectedQRRepository(ctrl)
	repo.EXPECT().
		DeleteExpired(gomock.Any(), gomock.AssignableToTypeOf(time.Time{})).
		Return(int64(3), nil)

	w := newCleanupWorker(repo, time.Minute, logger.Nop())
	w.purge()
}

func TestCleanupWorker_PurgeUsesUTCNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	before := time.Now().UTC()

	repo := mock.NewMockProtectedQRRepository(ctrl)
	repo.EXPECT().
		DeleteExpired(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, now time.Time) (int64, error) {
			assert.Equal(t, time.UTC, now.Location())
			assert.False(t, now.Before(before))
			return 0, nil
		})

	w := newCleanupWorker(repo, time.Minute, logger.Nop())
	w.purge()
}

func TestCleanupWorker_PurgeRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockProtectedQRRepository(ctrl)
	repo.EXPECT().
		DeleteExpired(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("connection lost"))

	// error is logged, not propagated
	w := newCleanupWorker(repo, time.Minute, logger.Nop())
	w.purge()
}

func TestCleanupWorker_LoopTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	done := make(chan struct{})

	repo := mock.NewMockProtectedQRRepository(ctrl)
	repo.EXPECT().
		DeleteExpired(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ time.Time) (int64, error) {
			select {
			case done <- struct{}{}:
			default:
			}
			return 0, nil
		}).
		MinTimes(1)

	w := newCleanupWorker(repo, 10*time.Millisecond, logger.Nop())
	w.Run()
	defer w.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup worker never ticked")
	}
}
