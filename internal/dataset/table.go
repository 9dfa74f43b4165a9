// Package dataset carrega o arquivo de vendas em uma tabela imutável em memória
package dataset

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// ColumnKind é o tipo inferido de uma coluna
type ColumnKind string

const (
	KindString  ColumnKind = "string"
	KindNumeric ColumnKind = "numeric"
	KindDate    ColumnKind = "date"
)

var requiredKinds = map[string]ColumnKind{
	domain.ColumnOrderID:        KindString,
	domain.ColumnDate:           KindDate,
	domain.ColumnCustomerRegion: KindString,
	domain.ColumnCategory:       KindString,
	domain.ColumnSubCategory:    KindString,
	domain.ColumnProduct:        KindString,
	domain.ColumnTotalSales:     KindNumeric,
}

// Table é uma sequência ordenada de registros com colunas nomeadas e tipadas.
// Depois de criada nunca é alterada, então pode ser compartilhada entre goroutines.
type Table struct {
	columns []string
	kinds   map[string]ColumnKind
	records []domain.SalesRecord
}

// NewTable cria uma tabela a partir de registros já tipados.
// Colunas extras presentes em Attributes são inferidas como numéricas quando todos os valores não vazios são decimais.
func NewTable(records []domain.SalesRecord, extraColumns ...string) *Table {
	columns := make([]string, 0, len(domain.RequiredColumns)+len(extraColumns))
	columns = append(columns, domain.RequiredColumns...)

	kinds := make(map[string]ColumnKind, len(columns)+len(extraColumns))
	for column, kind := range requiredKinds {
		kinds[column] = kind
	}

	for _, column := range extraColumns {
		if _, exists := kinds[column]; exists {
			continue
		}
		columns = append(columns, column)
		kinds[column] = inferKind(records, column)
	}

	stored := make([]domain.SalesRecord, len(records))
	copy(stored, records)

	return &Table{
		columns: columns,
		kinds:   kinds,
		records: stored,
	}
}

func inferKind(records []domain.SalesRecord, column string) ColumnKind {
	seen := false
	for _, record := range records {
		value := strings.TrimSpace(record.Attributes[column])
		if value == "" {
			continue
		}
		if _, err := decimal.NewFromString(value); err != nil {
			return KindString
		}
		seen = true
	}

	if !seen {
		return KindString
	}
	return KindNumeric
}

// Len retorna o número de linhas
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// At retorna a linha i
func (t *Table) At(i int) domain.SalesRecord {
	return t.records[i]
}

// Records retorna uma cópia das linhas
func (t *Table) Records() []domain.SalesRecord {
	if t == nil {
		return nil
	}
	records := make([]domain.SalesRecord, len(t.records))
	copy(records, t.records)
	return records
}

// Columns retorna os nomes das colunas na ordem de carga
func (t *Table) Columns() []string {
	columns := make([]string, len(t.columns))
	copy(columns, t.columns)
	return columns
}

// Kind retorna o tipo inferido da coluna
func (t *Table) Kind(column string) (ColumnKind, bool) {
	kind, ok := t.kinds[column]
	return kind, ok
}

// HasColumn indica se a coluna existe na tabela
func (t *Table) HasColumn(column string) bool {
	_, ok := t.kinds[column]
	return ok
}

// Measure retorna o valor numérico de uma coluna na linha i.
// Valores vazios de colunas extras contam como zero.
func (t *Table) Measure(i int, column string) (decimal.Decimal, error) {
	kind, ok := t.kinds[column]
	if !ok || kind != KindNumeric {
		return decimal.Zero, fmt.Errorf("coluna %q não é numérica", column)
	}

	record := t.records[i]
	if column == domain.ColumnTotalSales {
		return record.TotalSales, nil
	}

	value := strings.TrimSpace(record.Attributes[column])
	if value == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}

// Subset cria uma tabela com as linhas indicadas, preservando colunas e tipos
func (t *Table) Subset(indices []int) *Table {
	records := make([]domain.SalesRecord, 0, len(indices))
	for _, i := range indices {
		records = append(records, t.records[i])
	}

	return &Table{
		columns: t.columns,
		kinds:   t.kinds,
		records: records,
	}
}
