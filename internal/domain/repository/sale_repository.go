package repository

import (
	"github.com/shopspring/decimal"

	"github.com/caixaflow/pdv-api/internal/domain/entity"
)

// SaleRepository define o porto de persistência para vendas liquidadas.
// O caixa trata as vendas como oráculo somente leitura.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	ListByShift(shiftID string) ([]*entity.Sale, error)
	// TotalsByMethod devolve o total vendido por forma de pagamento no turno.
	// Formas sem venda podem estar ausentes do mapa.
	TotalsByMethod(shiftID string) (map[entity.PaymentMethod]decimal.Decimal, error)
}
