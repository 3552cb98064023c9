package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenShiftRequest body para POST /api/caixa/abrir.
type OpenShiftRequest struct {
	InitialCashFund decimal.Decimal `json:"initial_cash_fund"`
}

// CloseShiftRequest body para POST /api/caixa/fechar.
// FinalCashAmount é o dinheiro físico contado pelo operador.
type CloseShiftRequest struct {
	FinalCashAmount decimal.Decimal `json:"final_cash_amount"`
}

// CashOperationRequest body para POST /api/caixa/sangria e /api/caixa/reforco.
type CashOperationRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

// CashOperationResponse saída de uma operação de caixa registrada.
type CashOperationResponse struct {
	ID        string          `json:"id"`
	ShiftID   string          `json:"shift_id"`
	Type      string          `json:"type"` // sangria | reforco
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	CreatedAt time.Time       `json:"created_at"`
	CreatedBy string          `json:"created_by"`
}

// ShiftResponse saída de um turno (sem as listas de operações).
type ShiftResponse struct {
	ID              string           `json:"id"`
	OperatorID      string           `json:"operator_id"`
	OperatorName    string           `json:"operator_name"`
	StartTime       time.Time        `json:"start_time"`
	EndTime         *time.Time       `json:"end_time,omitempty"`
	InitialCashFund decimal.Decimal  `json:"initial_cash_fund"`
	FinalCashAmount *decimal.Decimal `json:"final_cash_amount,omitempty"`
	TotalSales      decimal.Decimal  `json:"total_sales"`
	Status          string           `json:"status"`
}

// ShiftDetailResponse turno com sangrias e reforços.
type ShiftDetailResponse struct {
	ShiftResponse
	Withdrawals []CashOperationResponse `json:"withdrawals"`
	Additions   []CashOperationResponse `json:"additions"`
}

// ShiftReportResponse relatório de conferência (prévia ou fechamento).
type ShiftReportResponse struct {
	ShiftID          string                     `json:"shift_id"`
	Status           string                     `json:"status"`
	InitialCashFund  decimal.Decimal            `json:"initial_cash_fund"`
	CashSales        decimal.Decimal            `json:"cash_sales"`
	TotalWithdrawals decimal.Decimal            `json:"total_withdrawals"`
	TotalAdditions   decimal.Decimal            `json:"total_additions"`
	ExpectedCash     decimal.Decimal            `json:"expected_cash"`
	TotalSales       decimal.Decimal            `json:"total_sales"`
	SalesByMethod    map[string]decimal.Decimal `json:"sales_by_method"`
	FinalCashAmount  *decimal.Decimal           `json:"final_cash_amount,omitempty"`
	Difference       *decimal.Decimal           `json:"difference,omitempty"`
	Outcome          string                     `json:"outcome"` // exato | sobra | falta | pendente
	// ExpectedCashDisplay formatado em pt-BR (R$ 1.234,56) para impressão.
	ExpectedCashDisplay string `json:"expected_cash_display"`
}
