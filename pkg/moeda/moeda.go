// Package moeda formata valores monetários em real brasileiro (R$ 1.234,56)
// para exibição em relatórios. A aritmética fica toda em decimal; aqui é só
// apresentação.
package moeda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata o valor com separador de milhar e vírgula decimal pt-BR.
func FormatBRL(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return printer.Sprintf("R$ %.2f", f)
}
