package dataset

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// LoadXLSX lê uma planilha Excel com o mesmo contrato do arquivo delimitado.
// Os valores são lidos crus, então datas chegam como número serial do Excel.
func LoadXLSX(path string, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir planilha %s", path)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &MalformedInputError{Source: path, Reason: "planilha sem abas"}
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &MalformedInputError{Source: path, Reason: "aba inválida: " + sheet, Err: err}
	}

	if len(rows) == 0 {
		return nil, &MalformedInputError{Source: path, Reason: "planilha sem cabeçalho"}
	}

	header := rows[0]
	dateIndex := -1
	for i, name := range header {
		if strings.TrimSpace(strings.TrimPrefix(name, utf8BOM)) == domain.ColumnDate {
			dateIndex = i
			break
		}
	}

	if dateIndex >= 0 {
		for _, row := range rows[1:] {
			if dateIndex < len(row) {
				row[dateIndex] = normalizeExcelDate(row[dateIndex])
			}
		}
	}

	return parseRows(path, header, rows[1:])
}

// normalizeExcelDate converte o número serial do Excel para RFC3339.
// Valores que não são números são devolvidos como estão.
func normalizeExcelDate(value string) string {
	serial, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return value
	}

	date, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return value
	}

	return date.UTC().Format(time.RFC3339Nano)
}
