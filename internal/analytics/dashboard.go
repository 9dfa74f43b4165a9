package analytics

import (
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// BuildDashboard recalcula o painel inteiro a partir da tabela carregada.
// É chamado a cada mudança de filtro; nada é reaproveitado entre chamadas.
func BuildDashboard(table *dataset.Table, query *domain.DashboardQuery) *domain.Dashboard {
	if query == nil {
		query = domain.NewDashboardQuery()
	}

	selection := ResolveSelection(table, query)
	filtered := Filter(table, selection)
	kpis := ComputeKPIs(filtered)

	return &domain.Dashboard{
		Selection:         selection,
		RowCount:          table.Len(),
		FilteredRowCount:  filtered.Len(),
		KPIs:              kpis,
		Display:           FormatKPIs(kpis),
		MonthlySales:      MonthlySales(filtered),
		TimeSeries:        TimeSeries(filtered),
		TopProducts:       TopProducts(filtered, query.TopProducts),
		RegionShare:       RegionShare(filtered),
		CategoryBreakdown: CategoryBreakdown(filtered),
	}
}
