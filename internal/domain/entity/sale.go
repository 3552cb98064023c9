package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod é a enumeração fechada de formas de pagamento.
// Novas formas são uma decisão de compilação, não um no-op silencioso em runtime.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "dinheiro"
	PaymentDebit    PaymentMethod = "debito"
	PaymentCredit   PaymentMethod = "credito"
	PaymentPix      PaymentMethod = "pix"
	PaymentCourtesy PaymentMethod = "cortesia"
)

// PaymentMethods lista todas as formas aceitas, na ordem de exibição do relatório.
var PaymentMethods = []PaymentMethod{
	PaymentCash, PaymentDebit, PaymentCredit, PaymentPix, PaymentCourtesy,
}

// Valid verifica se a forma de pagamento pertence à enumeração.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentDebit, PaymentCredit, PaymentPix, PaymentCourtesy:
		return true
	}
	return false
}

// Origens de uma venda no PDV.
const (
	SaleOriginTable    = "mesa"
	SaleOriginCounter  = "balcao"
	SaleOriginDelivery = "delivery"
)

// Sale é o total de uma comanda liquidada, já associado a um turno.
// O caixa só lê as vendas; nunca as altera.
type Sale struct {
	ID            string
	ShiftID       string
	Total         decimal.Decimal
	PaymentMethod PaymentMethod
	Origin        string // mesa | balcao | delivery
	Description   string // ex.: "mesa 12", "delivery João"
	CreatedAt     time.Time
	CreatedBy     string // UserID do operador
}
