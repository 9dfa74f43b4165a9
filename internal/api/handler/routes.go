package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIs(service),
		},
		{
			Path:    "/v1/dashboard/monthly",
			Method:  http.MethodGet,
			Handler: GetMonthlySales(service),
		},
		{
			Path:    "/v1/dashboard/charts/time-series",
			Method:  http.MethodGet,
			Handler: GetTimeSeries(service),
		},
		{
			Path:    "/v1/dashboard/charts/top-products",
			Method:  http.MethodGet,
			Handler: GetTopProducts(service),
		},
		{
			Path:    "/v1/dashboard/charts/region-share",
			Method:  http.MethodGet,
			Handler: GetRegionShare(service),
		},
		{
			Path:    "/v1/dashboard/charts/category-breakdown",
			Method:  http.MethodGet,
			Handler: GetCategoryBreakdown(service),
		},
		{
			Path:    "/v1/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
	}
}

func Dataset(service dashboarding.Dashboarder, reloader DatasetReloader, validator middleware.TokenValidator) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{
		middleware.AuthMiddleware(validator),
		middleware.AdminOnly(),
	}

	return []router.Route{
		{
			Path:    "/v1/dataset",
			Method:  http.MethodGet,
			Handler: GetDatasetInfo(service),
		},
		{
			Path:        "/v1/dataset/reload",
			Method:      http.MethodPost,
			Handler:     ReloadDataset(reloader),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/dataset/reload/status",
			Method:      http.MethodGet,
			Handler:     GetReloadStatus(reloader),
			Middlewares: adminOnly,
		},
	}
}
