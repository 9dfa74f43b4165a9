// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	defaultSalesRecordsTable = "sales_records"
	insertBatchSize          = 500
)

var salesRecordColumns = []string{
	"order_id",
	"order_date",
	"customer_region",
	"category",
	"sub_category",
	"product",
	"total_sales",
}

type SalesRecordRepository interface {
	ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error)
	SaveSalesRecords(ctx context.Context, records []domain.SalesRecord) (int64, error)
	EnsureSchema(ctx context.Context) error
}

type salesRecordRepository struct {
	conn  postgres.Conn
	table string
}

func NewSalesRecordRepository(conn postgres.Conn, table string) SalesRecordRepository {
	if table == "" {
		table = defaultSalesRecordsTable
	}

	return &salesRecordRepository{
		conn:  conn,
		table: table,
	}
}

// EnsureSchema cria a tabela de vendas caso ainda não exista
func (r *salesRecordRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, buildSchemaDDL(r.table)); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", r.table, err)
	}

	return nil
}

// ListSalesRecords retorna todas as vendas na ordem de inserção
func (r *salesRecordRepository) ListSalesRecords(ctx context.Context) ([]domain.SalesRecord, error) {
	query, args, err := buildListQuery(r.table)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		record, err := scanSalesRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// SaveSalesRecords insere as vendas em lotes dentro de uma única transação
func (r *salesRecordRepository) SaveSalesRecords(ctx context.Context, records []domain.SalesRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	var inserted int64
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(records); start += insertBatchSize {
			end := min(start+insertBatchSize, len(records))

			query, args, err := buildInsertQuery(r.table, records[start:end])
			if err != nil {
				return fmt.Errorf("erro ao construir a query de inserção: %w", err)
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("erro ao inserir lote de vendas: %w", err)
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return err
			}
			inserted += affected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// buildSchemaDDL usa NUMERIC sem escala para guardar os valores como vieram do arquivo
func buildSchemaDDL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id BIGSERIAL PRIMARY KEY,
		order_id TEXT NOT NULL,
		order_date TIMESTAMP NOT NULL,
		customer_region TEXT NOT NULL,
		category TEXT NOT NULL,
		sub_category TEXT NOT NULL,
		product TEXT NOT NULL,
		total_sales NUMERIC NOT NULL DEFAULT 0
	)`, table)
}

func buildListQuery(table string) (string, []any, error) {
	return squirrel.
		Select(salesRecordColumns...).
		From(table).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildInsertQuery(table string, records []domain.SalesRecord) (string, []any, error) {
	builder := squirrel.
		Insert(table).
		Columns(salesRecordColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		builder = builder.Values(
			record.OrderID,
			record.Date,
			record.CustomerRegion,
			record.Category,
			record.SubCategory,
			record.Product,
			record.TotalSales,
		)
	}

	return builder.ToSql()
}

func scanSalesRecord(rows *sql.Rows) (*domain.SalesRecord, error) {
	var record domain.SalesRecord

	err := rows.Scan(
		&record.OrderID,
		&record.Date,
		&record.CustomerRegion,
		&record.Category,
		&record.SubCategory,
		&record.Product,
		&record.TotalSales,
	)
	if err != nil {
		return nil, err
	}

	record.Date = record.Date.UTC()
	return &record, nil
}
