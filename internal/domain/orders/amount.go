package orders

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySuffix sufijo de moneda del importe formateado.
const CurrencySuffix = "원"

// Amount importe exacto cantidad × precio unitario.
func Amount(quantity, unitPrice int64) decimal.Decimal {
	return decimal.NewFromInt(quantity).Mul(decimal.NewFromInt(unitPrice))
}

// FormatAmount importe con separador de miles y sufijo de moneda: 500000 → "500,000원".
// Trabaja sobre los dígitos del decimal, sin límite de magnitud.
func FormatAmount(amount decimal.Decimal) string {
	digits := amount.Truncate(0).BigInt().String()
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	var b strings.Builder
	b.WriteString(sign)
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(CurrencySuffix)
	return b.String()
}

// TotalAmount snapshot del importe que se guarda en Order.TotalAmount.
func TotalAmount(quantity, unitPrice int64) string {
	return FormatAmount(Amount(quantity, unitPrice))
}
