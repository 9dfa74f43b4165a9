package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// DefaultTopProducts é o tamanho padrão do ranking de produtos
const DefaultTopProducts = 10

// TimeSeries soma as vendas por valor exato da coluna Date (não por dia nem por mês), em ordem crescente
func TimeSeries(table *dataset.Table) []domain.TimeSeriesPoint {
	points := make(map[time.Time]*domain.TimeSeriesPoint)

	for i := 0; i < table.Len(); i++ {
		record := table.At(i)
		key := record.Date.UTC()

		point, exists := points[key]
		if !exists {
			point = &domain.TimeSeriesPoint{Date: key, TotalSales: decimal.Zero}
			points[key] = point
		}
		point.TotalSales = point.TotalSales.Add(record.TotalSales)
	}

	series := make([]domain.TimeSeriesPoint, 0, len(points))
	for _, point := range points {
		series = append(series, *point)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series
}

// TopProducts retorna os n produtos de maior venda em ordem decrescente (empate pelo nome).
// n <= 0 usa DefaultTopProducts. Com menos de n produtos retorna apenas os existentes.
func TopProducts(table *dataset.Table, n int) []domain.ProductTotal {
	if n <= 0 {
		n = DefaultTopProducts
	}

	groups := sumTotalSalesBy(table, func(record domain.SalesRecord) []string {
		return []string{record.Product}
	})

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total.GreaterThan(groups[j].Total)
	})

	if len(groups) > n {
		groups = groups[:n]
	}

	products := make([]domain.ProductTotal, 0, len(groups))
	for _, group := range groups {
		products = append(products, domain.ProductTotal{
			Product:    group.Keys[0],
			TotalSales: group.Total,
		})
	}

	return products
}

// RegionShare soma as vendas por região e calcula a participação de cada uma no total das regiões
func RegionShare(table *dataset.Table) []domain.RegionTotal {
	groups := sumTotalSalesBy(table, func(record domain.SalesRecord) []string {
		return []string{record.CustomerRegion}
	})

	total := decimal.Zero
	for _, group := range groups {
		total = total.Add(group.Total)
	}

	regions := make([]domain.RegionTotal, 0, len(groups))
	for _, group := range groups {
		regions = append(regions, domain.RegionTotal{
			CustomerRegion: group.Keys[0],
			TotalSales:     group.Total,
			SharePct:       utils.RoundWithTwoDecimalPlace(utils.Percentage(group.Total, total)),
		})
	}

	return regions
}

// CategoryBreakdown soma as vendas por par (Category, SubCategory)
func CategoryBreakdown(table *dataset.Table) []domain.CategoryTotal {
	groups := sumTotalSalesBy(table, func(record domain.SalesRecord) []string {
		return []string{record.Category, record.SubCategory}
	})

	breakdown := make([]domain.CategoryTotal, 0, len(groups))
	for _, group := range groups {
		breakdown = append(breakdown, domain.CategoryTotal{
			Category:    group.Keys[0],
			SubCategory: group.Keys[1],
			TotalSales:  group.Total,
		})
	}

	return breakdown
}
