package utils

import (
	"database/sql"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder é exibido no lugar de qualquer valor ausente
const Placeholder = "—"

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney formata um valor monetário como $1,234.50
func FormatMoney(value float64) string {
	return moneyPrinter.Sprintf("$%.2f", value)
}

// FormatNullMoney formata o valor ou devolve o Placeholder quando nulo
func FormatNullMoney(value decimal.NullDecimal) string {
	if !value.Valid {
		return Placeholder
	}
	return FormatMoney(value.Decimal.InexactFloat64())
}

// FormatNullCount trunca a parte fracionária, como um cast para inteiro
func FormatNullCount(value decimal.NullDecimal) string {
	if !value.Valid {
		return Placeholder
	}
	return strconv.FormatInt(value.Decimal.IntPart(), 10)
}

func FormatNullText(value sql.NullString) string {
	if !value.Valid {
		return Placeholder
	}
	return value.String
}

func FormatText(value *string) string {
	if value == nil {
		return Placeholder
	}
	return *value
}
