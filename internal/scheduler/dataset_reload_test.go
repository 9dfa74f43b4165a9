package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// fakeReloader bloqueia até release ser fechado quando configurado
type fakeReloader struct {
	mu      sync.Mutex
	calls   int
	err     error
	started chan struct{}
	release chan struct{}
}

func (f *fakeReloader) ReloadDataset(ctx context.Context) (*domain.DatasetInfo, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}

	if f.err != nil {
		return nil, f.err
	}
	return &domain.DatasetInfo{Version: "v1", Rows: 3}, nil
}

func (f *fakeReloader) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		DatasetReload: config.DatasetReload{CronSchedule: "0 * * * *", Enabled: enabled},
	}
}

func TestDatasetReloadService_ReloadDataset(t *testing.T) {
	reloader := &fakeReloader{}
	service := NewDatasetReloadService(reloader, newTestConfig(false))

	info, err := service.ReloadDataset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1", info.Version)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "v1", status["last_version"])
	assert.Equal(t, "", status["last_error"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestDatasetReloadService_ReloadError(t *testing.T) {
	reloader := &fakeReloader{err: errors.New("arquivo corrompido")}
	service := NewDatasetReloadService(reloader, newTestConfig(false))

	_, err := service.ReloadDataset(context.Background())
	require.Error(t, err)

	status := service.GetStatus()
	assert.Equal(t, "arquivo corrompido", status["last_error"])
	assert.Equal(t, "", status["last_version"])
}

func TestDatasetReloadService_RejectsOverlappingReload(t *testing.T) {
	reloader := &fakeReloader{started: make(chan struct{}), release: make(chan struct{})}
	service := NewDatasetReloadService(reloader, newTestConfig(false))

	done := make(chan error, 1)
	go func() {
		_, err := service.ReloadDataset(context.Background())
		done <- err
	}()

	<-reloader.started
	assert.Equal(t, true, service.GetStatus()["sync_running"])

	_, err := service.ReloadDataset(context.Background())
	assert.ErrorIs(t, err, ErrReloadInProgress)

	// Solicitação manual durante a recarga é ignorada
	assert.False(t, service.TriggerManualSync())

	close(reloader.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, reloader.callCount())
}

func TestDatasetReloadService_TriggerManualSync(t *testing.T) {
	reloader := &fakeReloader{}
	service := NewDatasetReloadService(reloader, newTestConfig(false))

	assert.True(t, service.TriggerManualSync())

	assert.Eventually(t, func() bool {
		return service.GetStatus()["last_version"] == "v1"
	}, time.Second, 10*time.Millisecond)
}

func TestDatasetReloadService_StartDisabled(t *testing.T) {
	service := NewDatasetReloadService(&fakeReloader{}, newTestConfig(false))
	assert.NoError(t, service.Start(context.Background()))
}

func TestDatasetReloadService_StartInvalidCron(t *testing.T) {
	cfg := newTestConfig(true)
	cfg.DatasetReload.CronSchedule = "isso não é cron"

	service := NewDatasetReloadService(&fakeReloader{}, cfg)
	assert.Error(t, service.Start(context.Background()))
}
