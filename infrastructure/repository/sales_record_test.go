package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestBuildListQuery(t *testing.T) {
	query, args, err := buildListQuery("sales_records")
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT order_id, order_date, customer_region, category, sub_category, product, total_sales FROM sales_records ORDER BY id ASC",
		query,
	)
	assert.Empty(t, args)
}

func TestBuildSchemaDDL(t *testing.T) {
	ddl := buildSchemaDDL("sales_records")

	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS sales_records")
	assert.Contains(t, ddl, "total_sales NUMERIC NOT NULL DEFAULT 0")
	assert.NotContains(t, ddl, "NUMERIC(")
}

func TestBuildInsertQuery(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	records := []domain.SalesRecord{
		{OrderID: "O1", Date: date, CustomerRegion: "North", Category: "Electronics", SubCategory: "Phones", Product: "X1", TotalSales: decimal.NewFromInt(10)},
		{OrderID: "O2", Date: date, CustomerRegion: "South", Category: "Furniture", SubCategory: "Chairs", Product: "C1", TotalSales: decimal.NewFromInt(20)},
	}

	query, args, err := buildInsertQuery("sales_records", records)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO sales_records")
	assert.Contains(t, query, "$14")
	assert.NotContains(t, query, "?")
	assert.Len(t, args, 14)
	assert.Equal(t, "O1", args[0])
	assert.Equal(t, "South", args[9])
}

func TestNewSalesRecordRepository_DefaultTable(t *testing.T) {
	repo := NewSalesRecordRepository(nil, "")
	assert.Equal(t, defaultSalesRecordsTable, repo.(*salesRecordRepository).table)
}
