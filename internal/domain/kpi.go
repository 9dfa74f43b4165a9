package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// NotAvailable é o valor exibido quando uma métrica não pode ser calculada
const NotAvailable = "N/A"

func init() {
	// Valores monetários saem como números no JSON, não como strings
	decimal.MarshalJSONWithoutQuotes = true
}

// OptionalDecimal é um decimal que pode não estar disponível (serializado como "N/A")
type OptionalDecimal struct {
	Value decimal.Decimal
	Valid bool
}

// NewOptionalDecimal cria um valor disponível
func NewOptionalDecimal(value decimal.Decimal) OptionalDecimal {
	return OptionalDecimal{Value: value, Valid: true}
}

// String retorna o valor ou "N/A"
func (o OptionalDecimal) String() string {
	if !o.Valid {
		return NotAvailable
	}
	return o.Value.String()
}

func (o OptionalDecimal) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return json.Marshal(NotAvailable)
	}
	return []byte(o.Value.String()), nil
}

// KPISet reúne os indicadores principais do painel
type KPISet struct {
	TotalSales       decimal.Decimal `json:"total_sales"`
	TotalOrders      int             `json:"total_orders"`
	TopCategory      string          `json:"top_category"`       // "N/A" quando não há linhas
	MonthlyGrowthPct OptionalDecimal `json:"monthly_growth_pct"` // "N/A" com menos de dois meses ou mês anterior zerado
	PeakMonth        *time.Time      `json:"peak_month,omitempty"`
}

// KPIDisplay contém os indicadores já formatados para exibição
type KPIDisplay struct {
	TotalSales    string `json:"total_sales"`
	TotalOrders   string `json:"total_orders"`
	TopCategory   string `json:"top_category"`
	MonthlyGrowth string `json:"monthly_growth"`
	PeakMonth     string `json:"peak_month"`
}

// KPIReport é a resposta do endpoint de KPIs
type KPIReport struct {
	KPIs    KPISet     `json:"kpis"`
	Display KPIDisplay `json:"display"`
}
