package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestFormatKPIs(t *testing.T) {
	peak := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		kpis     domain.KPISet
		expected domain.KPIDisplay
	}{
		{
			name: "Todos os indicadores disponíveis",
			kpis: domain.KPISet{
				TotalSales:       decimal.RequireFromString("12345.67"),
				TotalOrders:      42,
				TopCategory:      "Technology",
				MonthlyGrowthPct: domain.NewOptionalDecimal(decimal.RequireFromString("28.5714")),
				PeakMonth:        &peak,
			},
			expected: domain.KPIDisplay{
				TotalSales:    "$12,346",
				TotalOrders:   "42",
				TopCategory:   "Technology",
				MonthlyGrowth: "28.6%",
				PeakMonth:     "March 2024",
			},
		},
		{
			name: "Indicadores indisponíveis",
			kpis: domain.KPISet{
				TopCategory: domain.NotAvailable,
			},
			expected: domain.KPIDisplay{
				TotalSales:    "$0",
				TotalOrders:   "0",
				TopCategory:   domain.NotAvailable,
				MonthlyGrowth: domain.NotAvailable,
				PeakMonth:     domain.NotAvailable,
			},
		},
		{
			name: "Crescimento no meio da casa decimal arredonda para o par",
			kpis: domain.KPISet{
				TotalSales:       decimal.RequireFromString("12344.5"),
				TotalOrders:      3,
				TopCategory:      "Technology",
				MonthlyGrowthPct: domain.NewOptionalDecimal(decimal.RequireFromString("50.25")),
			},
			expected: domain.KPIDisplay{
				TotalSales:    "$12,344",
				TotalOrders:   "3",
				TopCategory:   "Technology",
				MonthlyGrowth: "50.2%",
				PeakMonth:     domain.NotAvailable,
			},
		},
		{
			name: "Crescimento negativo",
			kpis: domain.KPISet{
				TotalSales:       decimal.NewFromInt(150),
				TotalOrders:      2,
				TopCategory:      "Furniture",
				MonthlyGrowthPct: domain.NewOptionalDecimal(decimal.NewFromInt(-50)),
			},
			expected: domain.KPIDisplay{
				TotalSales:    "$150",
				TotalOrders:   "2",
				TopCategory:   "Furniture",
				MonthlyGrowth: "-50.0%",
				PeakMonth:     domain.NotAvailable,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatKPIs(tt.kpis))
		})
	}
}
