package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest body para POST /api/vendas.
// A venda chega já totalizada (a comanda em si fica fora deste serviço).
type RegisterSaleRequest struct {
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"` // dinheiro, debito, credito, pix, cortesia
	Origin        string          `json:"origin,omitempty"`
	Description   string          `json:"description,omitempty"`
}

// SaleResponse saída de uma venda registrada.
type SaleResponse struct {
	ID            string          `json:"id"`
	ShiftID       string          `json:"shift_id"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Origin        string          `json:"origin,omitempty"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SalesSummaryResponse totais por forma de pagamento de um turno.
type SalesSummaryResponse struct {
	ShiftID        string                     `json:"shift_id"`
	Total          decimal.Decimal            `json:"total"`
	TotalsByMethod map[string]decimal.Decimal `json:"totals_by_method"`
}
