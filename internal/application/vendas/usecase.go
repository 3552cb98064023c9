// Package vendas é o agregador de vendas: alimenta o caixa com os totais por
// forma de pagamento. O caixa só lê daqui; nunca altera vendas.
package vendas

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/caixaflow/pdv-api/internal/domain"
	"github.com/caixaflow/pdv-api/internal/domain/entity"
	"github.com/caixaflow/pdv-api/internal/domain/repository"
)

// UseCase registra vendas liquidadas e responde as consultas por turno.
type UseCase struct {
	saleRepo  repository.SaleRepository
	shiftRepo repository.ShiftRepository
}

// NewUseCase constrói o caso de uso de vendas.
func NewUseCase(saleRepo repository.SaleRepository, shiftRepo repository.ShiftRepository) *UseCase {
	return &UseCase{saleRepo: saleRepo, shiftRepo: shiftRepo}
}

// SaleInput entrada para registrar uma venda já totalizada.
type SaleInput struct {
	OperatorID    string
	Total         decimal.Decimal
	PaymentMethod string
	Origin        string
	Description   string
}

// RegisterSale associa a venda ao turno aberto. Exige turno aberto, total
// positivo e forma de pagamento da enumeração fechada.
func (uc *UseCase) RegisterSale(ctx context.Context, in SaleInput) (*entity.Sale, error) {
	if in.Total.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	method := entity.PaymentMethod(in.PaymentMethod)
	if !method.Valid() {
		return nil, domain.ErrInvalidPayment
	}
	switch in.Origin {
	case "", entity.SaleOriginTable, entity.SaleOriginCounter, entity.SaleOriginDelivery:
	default:
		return nil, domain.ErrInvalidInput
	}

	shift, err := uc.shiftRepo.GetOpen()
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrNoActiveShift
	}

	sale := &entity.Sale{
		ID:            uuid.New().String(),
		ShiftID:       shift.ID,
		Total:         in.Total,
		PaymentMethod: method,
		Origin:        in.Origin,
		Description:   in.Description,
		CreatedAt:     time.Now(),
		CreatedBy:     in.OperatorID,
	}
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// SalesByShift devolve as vendas de um turno.
func (uc *UseCase) SalesByShift(ctx context.Context, shiftID string) ([]*entity.Sale, error) {
	shift, err := uc.shiftRepo.GetByID(shiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrNotFound
	}
	return uc.saleRepo.ListByShift(shiftID)
}

// TotalsByMethod devolve o total vendido por forma de pagamento no turno,
// com todas as formas da enumeração presentes (zero quando sem venda).
func (uc *UseCase) TotalsByMethod(ctx context.Context, shiftID string) (map[entity.PaymentMethod]decimal.Decimal, decimal.Decimal, error) {
	shift, err := uc.shiftRepo.GetByID(shiftID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if shift == nil {
		return nil, decimal.Zero, domain.ErrNotFound
	}
	totals, err := uc.saleRepo.TotalsByMethod(shiftID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	out := make(map[entity.PaymentMethod]decimal.Decimal, len(entity.PaymentMethods))
	grand := decimal.Zero
	for _, m := range entity.PaymentMethods {
		v := decimal.Zero
		if got, ok := totals[m]; ok {
			v = got
		}
		out[m] = v
		grand = grand.Add(v)
	}
	return out, grand, nil
}
