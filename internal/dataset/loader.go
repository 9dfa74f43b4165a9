package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const utf8BOM = "\uFEFF"

// Options configura a leitura do arquivo
type Options struct {
	Delimiter rune   // Separador de campos; zero usa ',' (ou tab para .tsv)
	Sheet     string // Planilha a ser lida em arquivos .xlsx; vazio usa a primeira
}

// Load lê o arquivo do dataset com as opções padrão
func Load(path string) (*Table, error) {
	return LoadWithOptions(path, Options{})
}

// LoadWithOptions lê um arquivo delimitado (ou .xlsx) com cabeçalho para uma tabela em memória.
// Qualquer falha de leitura aborta a carga inteira: não existe carga parcial.
func LoadWithOptions(path string, opts Options) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &MissingFileError{Path: path, Err: err}
		}
		return nil, errors.Wrapf(err, "erro ao acessar dataset %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, opts.Sheet)
	case ".tsv":
		if opts.Delimiter == 0 {
			opts.Delimiter = '\t'
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir dataset %s", path)
	}
	defer file.Close()

	return LoadCSV(file, path, opts.Delimiter)
}

// LoadCSV lê um conteúdo delimitado já aberto. source identifica a origem nas mensagens de erro.
func LoadCSV(r io.Reader, source string, delimiter rune) (*Table, error) {
	reader := csv.NewReader(r)
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, &MalformedInputError{
				Source: source,
				Row:    parseErr.Line,
				Reason: parseErr.Err.Error(),
				Err:    err,
			}
		}
		return nil, errors.Wrapf(err, "erro ao ler dataset %s", source)
	}

	if len(rows) == 0 {
		return nil, &MalformedInputError{Source: source, Reason: "arquivo sem cabeçalho"}
	}

	return parseRows(source, rows[0], rows[1:])
}

// parseRows converte as linhas brutas em registros tipados.
// A primeira linha de dados corresponde à linha 2 do arquivo.
func parseRows(source string, header []string, rows [][]string) (*Table, error) {
	index := make(map[string]int, len(header))
	extras := make([]string, 0)
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, utf8BOM))
		if name == "" {
			continue
		}
		if _, exists := index[name]; exists {
			continue
		}
		index[name] = i
		if _, required := requiredKinds[name]; !required {
			extras = append(extras, name)
		}
	}

	for _, column := range domain.RequiredColumns {
		if _, ok := index[column]; !ok {
			return nil, &MalformedInputError{
				Source: source,
				Column: column,
				Reason: "coluna obrigatória ausente",
			}
		}
	}

	records := make([]domain.SalesRecord, 0, len(rows))
	for i, row := range rows {
		if isBlank(row) {
			continue
		}

		line := i + 2
		field := func(column string) string {
			position := index[column]
			if position >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[position])
		}

		rawDate := field(domain.ColumnDate)
		date, err := utils.ParseDate(rawDate)
		if err != nil {
			return nil, &MalformedInputError{
				Source: source,
				Row:    line,
				Column: domain.ColumnDate,
				Value:  rawDate,
				Reason: "data inválida",
				Err:    err,
			}
		}

		totalSales := decimal.Zero
		if rawSales := field(domain.ColumnTotalSales); rawSales != "" {
			totalSales, err = decimal.NewFromString(rawSales)
			if err != nil {
				return nil, &MalformedInputError{
					Source: source,
					Row:    line,
					Column: domain.ColumnTotalSales,
					Value:  rawSales,
					Reason: "valor numérico inválido",
					Err:    err,
				}
			}
		}

		record := domain.SalesRecord{
			OrderID:        field(domain.ColumnOrderID),
			Date:           date,
			CustomerRegion: field(domain.ColumnCustomerRegion),
			Category:       field(domain.ColumnCategory),
			SubCategory:    field(domain.ColumnSubCategory),
			Product:        field(domain.ColumnProduct),
			TotalSales:     totalSales,
		}

		if len(extras) > 0 {
			record.Attributes = make(map[string]string, len(extras))
			for _, column := range extras {
				record.Attributes[column] = field(column)
			}
		}

		records = append(records, record)
	}

	return NewTable(records, extras...), nil
}

func isBlank(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
