package dashboarding

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Dashboarder define as consultas do painel. Cada chamada recalcula tudo a partir da tabela carregada.
type Dashboarder interface {
	// GetDashboard monta o painel completo para a consulta
	GetDashboard(ctx context.Context, query *domain.DashboardQuery) (*domain.Dashboard, error)

	// GetKPIs retorna os indicadores e sua versão formatada
	GetKPIs(ctx context.Context, query *domain.DashboardQuery) (*domain.KPIReport, error)

	GetTimeSeries(ctx context.Context, query *domain.DashboardQuery) ([]domain.TimeSeriesPoint, error)
	GetTopProducts(ctx context.Context, query *domain.DashboardQuery) ([]domain.ProductTotal, error)
	GetRegionShare(ctx context.Context, query *domain.DashboardQuery) ([]domain.RegionTotal, error)
	GetCategoryBreakdown(ctx context.Context, query *domain.DashboardQuery) ([]domain.CategoryTotal, error)
	GetMonthlySales(ctx context.Context, query *domain.DashboardQuery) ([]domain.MonthlyAggregate, error)

	// GetFilterOptions lista os valores disponíveis para os filtros de região e categoria
	GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error)

	// GetDatasetInfo descreve o dataset em memória
	GetDatasetInfo(ctx context.Context) (*domain.DatasetInfo, error)
}

// Reloader recarrega o dataset a partir da origem configurada
type Reloader interface {
	ReloadDataset(ctx context.Context) (*domain.DatasetInfo, error)
}

// DashboardService combina consultas e recarga
type DashboardService interface {
	Dashboarder
	Reloader
}
