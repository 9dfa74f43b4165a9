package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
)

// ErrReloadInProgress é retornado quando já existe uma recarga em execução
var ErrReloadInProgress = errors.New("dataset reload already in progress")

// DatasetReloadConfig representa a configuração do agendador de recarga do dataset
type DatasetReloadConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DatasetReloadService agenda e executa a recarga do dataset em memória
type DatasetReloadService struct {
	scheduler           *gocron.Scheduler
	config              DatasetReloadConfig
	reloader            dashboarding.Reloader
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastVersion         string
	lastError           string
}

// NewDatasetReloadService cria uma nova instância do serviço de recarga
func NewDatasetReloadService(reloader dashboarding.Reloader, appConfig *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule: appConfig.DatasetReload.CronSchedule,
		SyncEnabled:  appConfig.DatasetReload.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"sync_enabled":  reloadConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetReloadService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    reloadConfig,
		reloader:  reloader,
	}
}

// Start inicia o agendador
func (s *DatasetReloadService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recarga agendada do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.ReloadDataset(ctx); err != nil && !errors.Is(err, ErrReloadInProgress) {
			logrus.WithError(err).Error("Erro na recarga agendada do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// ReloadDataset executa uma recarga de forma síncrona.
// Retorna ErrReloadInProgress se outra recarga estiver em execução.
func (s *DatasetReloadService) ReloadDataset(ctx context.Context) (*domain.DatasetInfo, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando")
		return nil, ErrReloadInProgress
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	info, err := s.reloader.ReloadDataset(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
		return nil, err
	}

	s.lastError = ""
	s.lastVersion = info.Version

	logrus.WithFields(logrus.Fields{
		"version":  info.Version,
		"rows":     info.Rows,
		"duration": s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String(),
	}).Info("Recarga do dataset concluída")

	return info, nil
}

// TriggerManualSync inicia uma recarga em segundo plano.
// Retorna false quando já existe uma recarga em andamento.
func (s *DatasetReloadService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual do dataset")
	go func() {
		if _, err := s.ReloadDataset(context.Background()); err != nil && !errors.Is(err, ErrReloadInProgress) {
			logrus.WithError(err).Error("Erro na recarga manual do dataset")
		}
	}()

	return true
}

// GetStatus retorna o status atual da recarga
func (s *DatasetReloadService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_version":           s.lastVersion,
		"last_error":             s.lastError,
	}
}
