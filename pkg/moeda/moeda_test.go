package moeda_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/caixaflow/pdv-api/pkg/moeda"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		nome    string
		entrada string
		saida   string
	}{
		{"valor simples", "320.00", "R$ 320,00"},
		{"com milhar", "1234.56", "R$ 1.234,56"},
		{"zero", "0", "R$ 0,00"},
		{"arredonda para duas casas", "10.005", "R$ 10,01"},
		{"negativo (falta no caixa)", "-45.50", "R$ -45,50"},
	}
	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			v := decimal.RequireFromString(tc.entrada)
			assert.Equal(t, tc.saida, moeda.FormatBRL(v))
		})
	}
}
