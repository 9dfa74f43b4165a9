package utils

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts são os formatos aceitos para a coluna de data, em ordem de tentativa
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
}

// ParseDate interpreta uma data em ISO-8601 ou nos formatos americanos mais comuns.
// Datas sem fuso são tratadas como UTC.
func ParseDate(dateStr string) (time.Time, error) {
	value := strings.TrimSpace(dateStr)
	if value == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("formato de data não reconhecido: %q", dateStr)
}

// MonthStart retorna o primeiro instante do mês da data informada
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}
