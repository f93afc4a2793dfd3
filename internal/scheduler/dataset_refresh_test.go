package scheduler

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/agencydash/analytics-dashboard-api/internal/config"
	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/acquiring/mocks"
	"github.com/agencydash/analytics-dashboard-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func newTestService(loader *mocks.MockLoader) *DatasetRefreshService {
	return NewDatasetRefreshService(loader, &config.Config{
		DatasetRefresh: config.DatasetRefresh{
			CronSchedule: "0 6 * * *",
			Enabled:      false,
		},
	})
}

func TestRunRefresh(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(loader *mocks.MockLoader)
		validate func(t *testing.T, service *DatasetRefreshService, err error)
	}{
		{
			name: "successful refresh records the snapshot ID",
			setup: func(loader *mocks.MockLoader) {
				loader.EXPECT().Refresh().Return(&domain.Dataset{
					SnapshotID: "snap-1",
					Origin:     domain.OriginLive,
				}, nil)
			},
			validate: func(t *testing.T, service *DatasetRefreshService, err error) {
				assert.NoError(t, err)

				status := service.GetStatus()
				assert.Equal(t, "snap-1", status["last_refresh_snapshot_id"])
				assert.False(t, service.lastRefreshStartAt.IsZero())
				assert.False(t, service.lastRefreshDoneAt.IsZero())
			},
		},
		{
			name: "failed refresh returns the error and keeps the previous snapshot ID",
			setup: func(loader *mocks.MockLoader) {
				loader.EXPECT().Refresh().Return(nil, errors.New("all sources down"))
			},
			validate: func(t *testing.T, service *DatasetRefreshService, err error) {
				assert.Error(t, err)
				assert.Equal(t, "", service.lastRefreshSnapshot)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			loader := mocks.NewMockLoader(ctrl)
			tt.setup(loader)

			service := newTestService(loader)
			err := service.RunRefresh()
			tt.validate(t, service, err)
		})
	}
}

func TestRunRefreshSkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockLoader(ctrl)

	service := newTestService(loader)
	service.refreshRunning = true

	// The loader must not be called while another cycle is marked running.
	err := service.RunRefresh()
	assert.NoError(t, err)
}

func TestConcurrentRefreshesRunTheLoaderSerially(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Refresh().Return(&domain.Dataset{SnapshotID: "snap"}, nil).Times(5)

	service := newTestService(loader)

	wg := sync.WaitGroup{}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, service.RunRefresh())
		}()
	}
	wg.Wait()

	assert.Equal(t, "snap", service.lastRefreshSnapshot)
}

func TestGetStatusIsSafeDuringRefreshes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Refresh().Return(&domain.Dataset{SnapshotID: "snap"}, nil).Times(3)

	service := newTestService(loader)

	wg := sync.WaitGroup{}
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, service.RunRefresh())
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			status := service.GetStatus()
			assert.Contains(t, status, "last_refresh_snapshot_id")
		}()
	}
	wg.Wait()

	assert.Equal(t, "snap", service.GetStatus()["last_refresh_snapshot_id"])
}

func TestGetStatusShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(mocks.NewMockLoader(ctrl))

	status := service.GetStatus()
	assert.Equal(t, false, status["refresh_enabled"])
	assert.Equal(t, "0 6 * * *", status["refresh_cron"])
	assert.Contains(t, status, "last_refresh_started_at")
	assert.Contains(t, status, "last_refresh_completed_at")
}
