package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// queryHandler trata uma consulta filtrada do painel: lê os filtros, chama o serviço e responde JSON
func queryHandler[T any](name string, fetch func(ctx context.Context, query *domain.DashboardQuery) (T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query, err := parseDashboardQuery(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, err := fetch(r.Context(), query)
		if err != nil {
			writeServiceError(w, r, err, name+": erro ao calcular painel")
			return
		}

		logger.WithFields(log.Fields{
			"path":       r.URL.Path,
			"regions":    len(query.Regions),
			"categories": len(query.Categories),
		}).Debugf("%s: consulta respondida", name)

		writeJSON(w, r, http.StatusOK, result)
	})
}

func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return queryHandler("dashboard", service.GetDashboard)
}

func GetKPIs(service dashboarding.Dashboarder) http.Handler {
	return queryHandler("kpis", service.GetKPIs)
}

func GetMonthlySales(service dashboarding.Dashboarder) http.Handler {
	return queryHandler("monthly", service.GetMonthlySales)
}

func GetTimeSeries(service dashboarding.Dashboarder) http.Handler {
	return queryHandler("time-series", service.GetTimeSeries)
}

func GetTopProducts(service dashboarding.Dashboarder) http.Handler {
	return queryHandler("top-products", service.GetTopProducts)
}

func GetRegionShare(service dashboarding.Dashboarder) http.Handler {
	return queryHandler("region-share", service.GetRegionShare)
}

func GetCategoryBreakdown(service dashboarding.Dashboarder) http.Handler {
	return queryHandler("category-breakdown", service.GetCategoryBreakdown)
}

// GetFilterOptions lista as regiões e categorias disponíveis para os filtros
func GetFilterOptions(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		options, err := service.GetFilterOptions(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "filters: erro ao listar filtros")
			return
		}

		writeJSON(w, r, http.StatusOK, options)
	})
}
