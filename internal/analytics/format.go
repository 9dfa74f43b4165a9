package analytics

import (
	"strconv"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const currencySymbol = "$"

// FormatKPIs formata os indicadores como são exibidos no painel
func FormatKPIs(kpis domain.KPISet) domain.KPIDisplay {
	display := domain.KPIDisplay{
		TotalSales:    utils.FormatCurrency(kpis.TotalSales, currencySymbol),
		TotalOrders:   strconv.Itoa(kpis.TotalOrders),
		TopCategory:   kpis.TopCategory,
		MonthlyGrowth: domain.NotAvailable,
		PeakMonth:     domain.NotAvailable,
	}

	if kpis.MonthlyGrowthPct.Valid {
		display.MonthlyGrowth = kpis.MonthlyGrowthPct.Value.StringFixedBank(1) + "%"
	}

	if kpis.PeakMonth != nil {
		display.PeakMonth = kpis.PeakMonth.Format("January 2006")
	}

	return display
}
