package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RoundWithTwoDecimalPlace arredonda um valor monetário para duas casas
func RoundWithTwoDecimalPlace(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(2)
}

// PercentChange calcula (current - previous) / previous * 100.
// Retorna false quando previous é zero.
func PercentChange(previous, current decimal.Decimal) (decimal.Decimal, bool) {
	if previous.IsZero() {
		return decimal.Zero, false
	}

	return current.Sub(previous).Div(previous).Mul(hundred), true
}

// Percentage calcula part / total * 100, zero quando total é zero
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}

	return part.Div(total).Mul(hundred)
}

// FormatCurrency formata um valor sem casas decimais e com separador de milhar: $12,346.
// O arredondamento é bancário (meio para o par).
func FormatCurrency(amount decimal.Decimal, symbol string) string {
	negative := amount.IsNegative()
	digits := amount.Abs().RoundBank(0).StringFixed(0)

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	result := fmt.Sprintf("%s%s", symbol, strings.Join(groups, ","))
	if negative {
		result = "-" + result
	}
	return result
}
