// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Colunas obrigatórias do arquivo de vendas
const (
	ColumnOrderID        = "OrderID"
	ColumnDate           = "Date"
	ColumnCustomerRegion = "CustomerRegion"
	ColumnCategory       = "Category"
	ColumnSubCategory    = "SubCategory"
	ColumnProduct        = "Product"
	ColumnTotalSales     = "TotalSales"
)

// RequiredColumns lista as colunas que todo dataset precisa ter no cabeçalho
var RequiredColumns = []string{
	ColumnOrderID,
	ColumnDate,
	ColumnCustomerRegion,
	ColumnCategory,
	ColumnSubCategory,
	ColumnProduct,
	ColumnTotalSales,
}

// SalesRecord representa um item de pedido (uma linha do dataset).
// Um mesmo OrderID pode aparecer em várias linhas.
type SalesRecord struct {
	OrderID        string            `json:"order_id"`
	Date           time.Time         `json:"date"`
	CustomerRegion string            `json:"customer_region"`
	Category       string            `json:"category"`
	SubCategory    string            `json:"sub_category"`
	Product        string            `json:"product"`
	TotalSales     decimal.Decimal   `json:"total_sales"`
	Attributes     map[string]string `json:"attributes,omitempty"` // Colunas extras do arquivo, valor bruto
}

// Field retorna o valor textual de uma coluna do registro.
// Datas são formatadas em RFC3339 com nanossegundos para preservar o instante exato.
func (r SalesRecord) Field(column string) (string, bool) {
	switch column {
	case ColumnOrderID:
		return r.OrderID, true
	case ColumnDate:
		return r.Date.Format(time.RFC3339Nano), true
	case ColumnCustomerRegion:
		return r.CustomerRegion, true
	case ColumnCategory:
		return r.Category, true
	case ColumnSubCategory:
		return r.SubCategory, true
	case ColumnProduct:
		return r.Product, true
	case ColumnTotalSales:
		return r.TotalSales.String(), true
	}

	value, ok := r.Attributes[column]
	return value, ok
}
