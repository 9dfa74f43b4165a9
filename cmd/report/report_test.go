package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"gopkg.in/yaml.v3"
)

const salesCSV = `OrderID,Date,CustomerRegion,Category,SubCategory,Product,TotalSales
1,2024-01-01,A,X,x1,P1,10
2,2024-02-01,B,Y,y1,P2,20
`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(salesCSV), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestReport_JSON(t *testing.T) {
	out, err := execute(t, "--file", writeDataset(t), "--region", "A")
	require.NoError(t, err)

	var dashboard map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &dashboard))

	kpis := dashboard["kpis"].(map[string]any)
	assert.Equal(t, float64(10), kpis["total_sales"])
	assert.Equal(t, float64(1), kpis["total_orders"])
	assert.Equal(t, "X", kpis["top_category"])
	assert.Equal(t, domain.NotAvailable, kpis["monthly_growth_pct"])
}

func TestReport_YAML(t *testing.T) {
	out, err := execute(t, "--file", writeDataset(t), "--output", "yaml", "--top", "1")
	require.NoError(t, err)

	var dashboard struct {
		KPIs struct {
			TotalSales       float64 `yaml:"total_sales"`
			MonthlyGrowthPct float64 `yaml:"monthly_growth_pct"`
		} `yaml:"kpis"`
		TopProducts []struct {
			Product string `yaml:"product"`
		} `yaml:"top_products"`
		Display struct {
			PeakMonth string `yaml:"peak_month"`
		} `yaml:"display"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &dashboard))

	assert.Equal(t, float64(30), dashboard.KPIs.TotalSales)
	assert.Equal(t, float64(100), dashboard.KPIs.MonthlyGrowthPct)
	require.Len(t, dashboard.TopProducts, 1)
	assert.Equal(t, "P2", dashboard.TopProducts[0].Product)
	assert.Equal(t, "February 2024", dashboard.Display.PeakMonth)
}

func TestReport_Errors(t *testing.T) {
	path := writeDataset(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "Sem arquivo", args: []string{}},
		{name: "Arquivo inexistente", args: []string{"--file", filepath.Join(t.TempDir(), "nada.csv")}},
		{name: "Formato inválido", args: []string{"--file", path, "--output", "xml"}},
		{name: "Top inválido", args: []string{"--file", path, "--top", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestToken(t *testing.T) {
	out, err := execute(t, "token", "--secret", "segredo", "--subject", "ops")
	require.NoError(t, err)

	auth := authenticating.NewService(&config.Config{SecretKey: "segredo"})
	claims, err := auth.ValidateToken(string(bytes.TrimSpace([]byte(out))))
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "ops", claims.Subject)
}
