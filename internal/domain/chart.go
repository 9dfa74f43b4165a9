package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupTotal é o resultado de uma soma agrupada: uma tupla de chaves e o total do grupo
type GroupTotal struct {
	Keys  []string        `json:"keys"`
	Total decimal.Decimal `json:"total"`
}

// MonthlyAggregate é o total de vendas de um mês do calendário
type MonthlyAggregate struct {
	PeriodStart time.Time       `json:"period_start"`
	TotalSales  decimal.Decimal `json:"total_sales"`
}

// TimeSeriesPoint é o total de vendas em um instante exato da coluna Date
type TimeSeriesPoint struct {
	Date       time.Time       `json:"date"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

type ProductTotal struct {
	Product    string          `json:"product"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

type RegionTotal struct {
	CustomerRegion string          `json:"customer_region"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	SharePct       decimal.Decimal `json:"share_pct"` // Participação no total filtrado
}

type CategoryTotal struct {
	Category    string          `json:"category"`
	SubCategory string          `json:"sub_category"`
	TotalSales  decimal.Decimal `json:"total_sales"`
}
