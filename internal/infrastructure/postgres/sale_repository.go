package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/caixaflow/pdv-api/internal/domain/entity"
	"github.com/caixaflow/pdv-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação de SaleRepository (usável com pool ou tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste uma venda liquidada.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, shift_id, total, payment_method, origin, description, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ShiftID, sale.Total, string(sale.PaymentMethod),
		sale.Origin, sale.Description, sale.CreatedAt, sale.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListByShift devolve as vendas do turno em ordem de criação.
func (r *SaleRepo) ListByShift(shiftID string) ([]*entity.Sale, error) {
	query := `
		SELECT id, shift_id, total, payment_method, origin, description, created_at, created_by
		FROM sales WHERE shift_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var method string
		if err := rows.Scan(&s.ID, &s.ShiftID, &s.Total, &method, &s.Origin, &s.Description, &s.CreatedAt, &s.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		s.PaymentMethod = entity.PaymentMethod(method)
		list = append(list, &s)
	}
	return list, rows.Err()
}

// TotalsByMethod agrupa e soma as vendas do turno por forma de pagamento.
func (r *SaleRepo) TotalsByMethod(shiftID string) (map[entity.PaymentMethod]decimal.Decimal, error) {
	query := `
		SELECT payment_method, COALESCE(SUM(total), 0)
		FROM sales WHERE shift_id = $1 GROUP BY payment_method`
	rows, err := r.q.Query(context.Background(), query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("totals by method: %w", err)
	}
	defer rows.Close()
	totals := make(map[entity.PaymentMethod]decimal.Decimal)
	for rows.Next() {
		var method string
		var total decimal.Decimal
		if err := rows.Scan(&method, &total); err != nil {
			return nil, fmt.Errorf("scan total: %w", err)
		}
		totals[entity.PaymentMethod(method)] = total
	}
	return totals, rows.Err()
}
