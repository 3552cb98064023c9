package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de operação de caixa.
const (
	OperationTypeWithdrawal = "sangria" // retirada de dinheiro da gaveta
	OperationTypeAddition   = "reforco" // entrada de dinheiro na gaveta
)

// CashOperation é um lançamento imutável do caixa (sangria ou reforço).
// Nunca é editada nem excluída: correções entram como operação compensatória.
type CashOperation struct {
	ID        string
	ShiftID   string
	Type      string // sangria | reforco
	Amount    decimal.Decimal
	Reason    string
	CreatedAt time.Time
	CreatedBy string // UserID do operador
}
