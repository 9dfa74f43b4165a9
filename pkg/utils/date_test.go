package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{name: "ISO data", input: "2024-03-15", expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "ISO com hora", input: "2024-03-15 10:30:00", expected: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{name: "ISO com T", input: "2024-03-15T10:30:00", expected: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{name: "RFC3339 com fuso", input: "2024-03-15T10:30:00-03:00", expected: time.Date(2024, 3, 15, 13, 30, 0, 0, time.UTC)},
		{name: "formato americano", input: "03/15/2024", expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "formato americano curto", input: "3/5/2024", expected: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "espaços nas bordas", input: "  2024-01-01 ", expected: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(date), "esperado %s, obtido %s", tt.expected, date)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "ontem", "2024-13-45", "15.03.2024"} {
		_, err := ParseDate(input)
		assert.Error(t, err, input)
	}
}

func TestMonthStart(t *testing.T) {
	date := time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), MonthStart(date))
}
