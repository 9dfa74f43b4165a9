package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{name: "zero", amount: decimal.Zero, expected: "$0"},
		{name: "menor que mil", amount: decimal.RequireFromString("999.4"), expected: "$999"},
		{name: "meio arredonda para o par acima", amount: decimal.RequireFromString("12345.5"), expected: "$12,346"},
		{name: "meio arredonda para o par abaixo", amount: decimal.RequireFromString("12344.5"), expected: "$12,344"},
		{name: "acima do meio", amount: decimal.RequireFromString("12344.51"), expected: "$12,345"},
		{name: "milhões", amount: decimal.RequireFromString("1234567"), expected: "$1,234,567"},
		{name: "negativo", amount: decimal.RequireFromString("-1500"), expected: "-$1,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.amount, "$"))
		})
	}
}

func TestPercentChange(t *testing.T) {
	change, ok := PercentChange(decimal.NewFromInt(100), decimal.NewFromInt(150))
	assert.True(t, ok)
	assert.True(t, change.Equal(decimal.NewFromInt(50)), change.String())

	change, ok = PercentChange(decimal.NewFromInt(200), decimal.NewFromInt(150))
	assert.True(t, ok)
	assert.True(t, change.Equal(decimal.NewFromInt(-25)), change.String())

	_, ok = PercentChange(decimal.Zero, decimal.NewFromInt(10))
	assert.False(t, ok)
}

func TestPercentage(t *testing.T) {
	assert.True(t, Percentage(decimal.NewFromInt(1), decimal.NewFromInt(4)).Equal(decimal.NewFromInt(25)))
	assert.True(t, Percentage(decimal.NewFromInt(1), decimal.Zero).IsZero())
}
