package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

// DatasetReloader é implementado pelo agendador de recarga
type DatasetReloader interface {
	ReloadDataset(ctx context.Context) (*domain.DatasetInfo, error)
	TriggerManualSync() bool
	GetStatus() map[string]any
}

func GetDatasetInfo(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, err := service.GetDatasetInfo(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "dataset: erro ao consultar dataset")
			return
		}

		writeJSON(w, r, http.StatusOK, info)
	})
}

// ReloadDataset recarrega o dataset e responde com a nova versão.
// Com ?async=true a recarga roda em segundo plano e a resposta é 202 com o status do agendador.
func ReloadDataset(reloader DatasetReloader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		async := false
		if raw := r.URL.Query().Get("async"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro async inválido", map[string]any{"async": raw})
				return
			}
			async = parsed
		}

		logger := log.ForContext(r.Context())
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			logger = logger.WithField("dataset_requested_by", claims.Subject)
		}
		logger.WithField("dataset_async", async).Info("dataset: recarga solicitada")

		if async {
			if !reloader.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrReloadInProgress, "Recarga do dataset já em andamento", nil)
				return
			}
			writeJSON(w, r, http.StatusAccepted, reloader.GetStatus())
			return
		}

		info, err := reloader.ReloadDataset(r.Context())
		if err != nil {
			if errors.Is(err, scheduler.ErrReloadInProgress) {
				apiErrors.WriteError(w, apiErrors.ErrReloadInProgress, "Recarga do dataset já em andamento", nil)
				return
			}
			writeServiceError(w, r, err, "dataset: erro ao recarregar dataset")
			return
		}

		writeJSON(w, r, http.StatusOK, info)
	})
}

func GetReloadStatus(reloader DatasetReloader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, reloader.GetStatus())
	})
}
