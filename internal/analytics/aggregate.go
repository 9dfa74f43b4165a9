package analytics

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var (
	ErrUnknownColumn = errors.New("unknown column")
	ErrNotNumeric    = errors.New("column is not numeric")
)

const keySeparator = "\x1f"

// GroupSum agrupa as linhas pela combinação de valores das colunas groupKeys e soma measure em cada grupo.
// O resultado é ordenado pela tupla de chaves. Sem chaves, devolve um único grupo com o total.
// Linhas com alguma chave vazia não formam grupo.
func GroupSum(table *dataset.Table, groupKeys []string, measure string) ([]domain.GroupTotal, error) {
	if table == nil {
		return []domain.GroupTotal{}, nil
	}

	for _, key := range groupKeys {
		if !table.HasColumn(key) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, key)
		}
	}

	kind, ok := table.Kind(measure)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, measure)
	}
	if kind != dataset.KindNumeric {
		return nil, fmt.Errorf("%w: %s", ErrNotNumeric, measure)
	}

	keyOf := func(record domain.SalesRecord) []string {
		keys := make([]string, len(groupKeys))
		for j, column := range groupKeys {
			keys[j], _ = record.Field(column)
		}
		return keys
	}

	return groupTotals(table, keyOf, func(i int) (decimal.Decimal, error) {
		return table.Measure(i, measure)
	})
}

// groupTotals é o núcleo das somas agrupadas
func groupTotals(
	table *dataset.Table,
	keyOf func(domain.SalesRecord) []string,
	valueOf func(i int) (decimal.Decimal, error),
) ([]domain.GroupTotal, error) {
	groups := make(map[string]*domain.GroupTotal)

	for i := 0; i < table.Len(); i++ {
		keys := keyOf(table.At(i))
		if hasBlankKey(keys) {
			continue
		}

		value, err := valueOf(i)
		if err != nil {
			return nil, err
		}

		id := strings.Join(keys, keySeparator)
		group, exists := groups[id]
		if !exists {
			group = &domain.GroupTotal{Keys: keys, Total: decimal.Zero}
			groups[id] = group
		}
		group.Total = group.Total.Add(value)
	}

	result := make([]domain.GroupTotal, 0, len(groups))
	for _, group := range groups {
		result = append(result, *group)
	}

	sort.Slice(result, func(i, j int) bool {
		return compareKeys(result[i].Keys, result[j].Keys) < 0
	})

	return result, nil
}

func hasBlankKey(keys []string) bool {
	for _, key := range keys {
		if key == "" {
			return true
		}
	}
	return false
}

func compareKeys(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

// sumTotalSalesBy agrupa por campos do registro somando TotalSales
func sumTotalSalesBy(table *dataset.Table, keyOf func(domain.SalesRecord) []string) []domain.GroupTotal {
	groups, _ := groupTotals(table, keyOf, func(i int) (decimal.Decimal, error) {
		return table.At(i).TotalSales, nil
	})
	return groups
}

// CountDistinct conta os valores distintos não vazios de uma coluna
func CountDistinct(table *dataset.Table, column string) (int, error) {
	if table.Len() == 0 {
		return 0, nil
	}
	if !table.HasColumn(column) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	return len(DistinctValues(table, column)), nil
}

// TotalSales soma TotalSales de todas as linhas
func TotalSales(table *dataset.Table) decimal.Decimal {
	total := decimal.Zero
	for i := 0; i < table.Len(); i++ {
		total = total.Add(table.At(i).TotalSales)
	}
	return total
}

// MonthlySales soma TotalSales por mês do calendário, em ordem cronológica.
// Meses sem vendas não aparecem.
func MonthlySales(table *dataset.Table) []domain.MonthlyAggregate {
	totals := make(map[int64]*domain.MonthlyAggregate)

	for i := 0; i < table.Len(); i++ {
		record := table.At(i)
		period := utils.MonthStart(record.Date)

		month, exists := totals[period.Unix()]
		if !exists {
			month = &domain.MonthlyAggregate{PeriodStart: period, TotalSales: decimal.Zero}
			totals[period.Unix()] = month
		}
		month.TotalSales = month.TotalSales.Add(record.TotalSales)
	}

	months := make([]domain.MonthlyAggregate, 0, len(totals))
	for _, month := range totals {
		months = append(months, *month)
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].PeriodStart.Before(months[j].PeriodStart)
	})

	return months
}
