package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func record(orderID, date, region, category, subCategory, product, sales string) domain.SalesRecord {
	parsed, err := time.Parse(time.DateOnly, date)
	if err != nil {
		parsed, _ = time.Parse(time.RFC3339, date)
	}

	return domain.SalesRecord{
		OrderID:        orderID,
		Date:           parsed.UTC(),
		CustomerRegion: region,
		Category:       category,
		SubCategory:    subCategory,
		Product:        product,
		TotalSales:     decimal.RequireFromString(sales),
	}
}

// sampleTable tem duas regiões, três categorias e dois meses
func sampleTable() *dataset.Table {
	return dataset.NewTable([]domain.SalesRecord{
		record("O1", "2024-01-05", "East", "Technology", "Phones", "Phone X", "100"),
		record("O2", "2024-01-20", "West", "Furniture", "Chairs", "Chair A", "50"),
		record("O2", "2024-01-20", "West", "Furniture", "Tables", "Table B", "25"),
		record("O3", "2024-02-02", "East", "Office Supplies", "Paper", "Paper Pack", "15"),
		record("O4", "2024-02-10", "West", "Technology", "Phones", "Phone X", "200"),
		record("O5", "2024-02-10", "East", "Technology", "Accessories", "Cable", "10"),
	})
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "esperado %s, obtido %s", expected, actual)
}
