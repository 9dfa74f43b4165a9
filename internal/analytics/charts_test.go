package analytics

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestTimeSeries(t *testing.T) {
	table := dataset.NewTable([]domain.SalesRecord{
		record("O1", "2024-01-02T10:00:00Z", "A", "x", "", "p", "5"),
		record("O2", "2024-01-01", "A", "x", "", "p", "1"),
		record("O3", "2024-01-02T10:00:00Z", "A", "x", "", "p", "7"),
		record("O4", "2024-01-02", "A", "x", "", "p", "3"),
	})

	series := TimeSeries(table)
	require.Len(t, series, 3)

	assert.Equal(t, "2024-01-01T00:00:00Z", series[0].Date.Format("2006-01-02T15:04:05Z07:00"))
	assert.Equal(t, "2024-01-02T00:00:00Z", series[1].Date.Format("2006-01-02T15:04:05Z07:00"))
	assert.Equal(t, "2024-01-02T10:00:00Z", series[2].Date.Format("2006-01-02T15:04:05Z07:00"))
	assertDecimal(t, "12", series[2].TotalSales)

	assert.NotNil(t, TimeSeries(dataset.NewTable(nil)))
}

func TestTimeSeries_DatesFarFromEpoch(t *testing.T) {
	table := dataset.NewTable([]domain.SalesRecord{
		record("O1", "1500-06-01", "A", "x", "", "p", "1"),
		record("O2", "3000-06-01", "A", "x", "", "p", "2"),
		record("O3", "1500-06-01", "A", "x", "", "p", "4"),
	})

	series := TimeSeries(table)
	require.Len(t, series, 2)
	assert.Equal(t, 1500, series[0].Date.Year())
	assertDecimal(t, "5", series[0].TotalSales)
	assert.Equal(t, 3000, series[1].Date.Year())
	assertDecimal(t, "2", series[1].TotalSales)
}

func TestTopProducts(t *testing.T) {
	records := make([]domain.SalesRecord, 0, 15)
	for i := 1; i <= 15; i++ {
		records = append(records, record(fmt.Sprintf("O%d", i), "2024-01-01", "A", "x", "", fmt.Sprintf("P%02d", i), fmt.Sprint(i*10)))
	}
	// Empate com P15
	records = append(records, record("O16", "2024-01-01", "A", "x", "", "P00", "150"))
	table := dataset.NewTable(records)

	top := TopProducts(table, 10)
	require.Len(t, top, 10)
	assert.Equal(t, "P00", top[0].Product)
	assert.Equal(t, "P15", top[1].Product)
	assert.Equal(t, "P07", top[9].Product)
	for i := 1; i < len(top); i++ {
		assert.False(t, top[i].TotalSales.GreaterThan(top[i-1].TotalSales))
	}

	assert.Len(t, TopProducts(table, 0), DefaultTopProducts)
	assert.Len(t, TopProducts(table, 3), 3)
}

func TestTopProducts_MatchesGroupSum(t *testing.T) {
	table := sampleTable()

	groups, err := GroupSum(table, []string{domain.ColumnProduct}, domain.ColumnTotalSales)
	require.NoError(t, err)

	expected := make(map[string]decimal.Decimal, len(groups))
	for _, group := range groups {
		expected[group.Keys[0]] = group.Total
	}

	top := TopProducts(table, len(groups))
	require.Len(t, top, len(groups))
	for _, product := range top {
		total, ok := expected[product.Product]
		require.True(t, ok, "produto inesperado %s", product.Product)
		assertDecimal(t, total.String(), product.TotalSales)
	}
}

func TestTopProducts_FewerThanN(t *testing.T) {
	top := TopProducts(sampleTable(), 10)

	require.Len(t, top, 5)
	assert.Equal(t, "Phone X", top[0].Product)
	assertDecimal(t, "300", top[0].TotalSales)
	assert.Empty(t, TopProducts(dataset.NewTable(nil), 10))
}

func TestRegionShare(t *testing.T) {
	regions := RegionShare(sampleTable())
	require.Len(t, regions, 2)

	assert.Equal(t, "East", regions[0].CustomerRegion)
	assertDecimal(t, "125", regions[0].TotalSales)
	assertDecimal(t, "31.25", regions[0].SharePct)

	assert.Equal(t, "West", regions[1].CustomerRegion)
	assertDecimal(t, "275", regions[1].TotalSales)
	assertDecimal(t, "68.75", regions[1].SharePct)
}

func TestRegionShare_IgnoresBlankRegion(t *testing.T) {
	regions := RegionShare(dataset.NewTable([]domain.SalesRecord{
		record("O1", "2024-01-01", "A", "x", "", "p", "30"),
		record("O2", "2024-01-01", "", "x", "", "p", "50"),
		record("O3", "2024-01-01", "B", "x", "", "p", "10"),
	}))

	require.Len(t, regions, 2)
	assert.Equal(t, "A", regions[0].CustomerRegion)
	assertDecimal(t, "75", regions[0].SharePct)
	assert.Equal(t, "B", regions[1].CustomerRegion)
	assertDecimal(t, "25", regions[1].SharePct)
}

func TestRegionShare_ZeroTotal(t *testing.T) {
	regions := RegionShare(dataset.NewTable([]domain.SalesRecord{
		record("O1", "2024-01-01", "A", "x", "", "p", "0"),
	}))

	require.Len(t, regions, 1)
	assert.True(t, regions[0].SharePct.IsZero())
}

func TestCategoryBreakdown(t *testing.T) {
	table := sampleTable()
	breakdown := CategoryBreakdown(table)

	require.Len(t, breakdown, 5)
	assert.Equal(t, "Furniture", breakdown[0].Category)
	assert.Equal(t, "Chairs", breakdown[0].SubCategory)

	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, row := range breakdown {
		total = total.Add(row.TotalSales)
		byCategory[row.Category] = byCategory[row.Category].Add(row.TotalSales)
	}
	assertDecimal(t, TotalSales(table).String(), total)

	// Somar de novo por categoria reproduz o GroupSum por categoria
	groups, err := GroupSum(table, []string{domain.ColumnCategory}, domain.ColumnTotalSales)
	require.NoError(t, err)
	require.Len(t, byCategory, len(groups))
	for _, group := range groups {
		assertDecimal(t, group.Total.String(), byCategory[group.Keys[0]])
	}
}
