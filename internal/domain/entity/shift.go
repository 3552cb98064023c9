package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de um turno de caixa.
const (
	ShiftStatusOpen   = "aberto"
	ShiftStatusClosed = "fechado"
)

// Shift representa um turno de caixa: da abertura da gaveta até o fechamento.
// Existe no máximo um turno com status "aberto" por vez; o índice parcial em
// shifts(status) garante isso também no banco.
type Shift struct {
	ID           string
	OperatorID   string // referência fraca ao usuário que abriu o turno
	OperatorName string
	StartTime    time.Time
	EndTime      *time.Time // nil enquanto aberto; gravado uma única vez no fechamento
	// InitialCashFund é o fundo de caixa (troco inicial). Imutável após a abertura.
	InitialCashFund decimal.Decimal
	// FinalCashAmount é o valor físico contado pelo operador no fechamento.
	FinalCashAmount *decimal.Decimal
	// TotalSales é congelado no fechamento a partir do agregador de vendas.
	TotalSales decimal.Decimal
	Status     string // aberto | fechado
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Preenchidos quando o turno é carregado com as operações.
	Withdrawals []*CashOperation // sangrias, ordem de criação
	Additions   []*CashOperation // reforços, ordem de criação
}

// IsOpen indica se o turno ainda aceita operações de caixa.
func (s *Shift) IsOpen() bool {
	return s != nil && s.Status == ShiftStatusOpen
}
