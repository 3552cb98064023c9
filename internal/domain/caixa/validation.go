package caixa

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/caixaflow/pdv-api/internal/domain"
)

// ValidateOperation valida os dados de uma sangria ou reforço antes do registro.
// O valor deve ser estritamente positivo e o motivo não pode ser vazio
// (espaços em branco não contam).
func ValidateOperation(amount decimal.Decimal, reason string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if strings.TrimSpace(reason) == "" {
		return domain.ErrInvalidReason
	}
	return nil
}

// ValidateFund valida o fundo de caixa na abertura (zero é permitido).
func ValidateFund(fund decimal.Decimal) error {
	if fund.IsNegative() {
		return domain.ErrInvalidAmount
	}
	return nil
}

// ValidateFinalCount valida o valor físico contado no fechamento.
func ValidateFinalCount(counted decimal.Decimal) error {
	if counted.IsNegative() {
		return domain.ErrInvalidAmount
	}
	return nil
}
