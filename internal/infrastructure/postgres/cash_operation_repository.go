package postgres

import (
	"context"
	"fmt"

	"github.com/caixaflow/pdv-api/internal/domain/entity"
	"github.com/caixaflow/pdv-api/internal/domain/repository"
)

var _ repository.CashOperationRepository = (*CashOperationRepo)(nil)

// CashOperationRepo implementação de CashOperationRepository (usável com pool ou tx).
// Só INSERT e SELECT: o histórico de sangrias e reforços nunca é alterado.
type CashOperationRepo struct {
	q Querier
}

// NewCashOperationRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCashOperationRepository(q Querier) *CashOperationRepo {
	return &CashOperationRepo{q: q}
}

// Create persiste uma operação de caixa.
func (r *CashOperationRepo) Create(op *entity.CashOperation) error {
	query := `
		INSERT INTO cash_operations (id, shift_id, type, amount, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		op.ID, op.ShiftID, op.Type, op.Amount, op.Reason, op.CreatedAt, op.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert cash operation: %w", err)
	}
	return nil
}

// ListByShift devolve as operações do turno em ordem de criação.
func (r *CashOperationRepo) ListByShift(shiftID string) ([]*entity.CashOperation, error) {
	query := `
		SELECT id, shift_id, type, amount, reason, created_at, created_by
		FROM cash_operations WHERE shift_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("list cash operations: %w", err)
	}
	defer rows.Close()
	var list []*entity.CashOperation
	for rows.Next() {
		var op entity.CashOperation
		if err := rows.Scan(&op.ID, &op.ShiftID, &op.Type, &op.Amount, &op.Reason, &op.CreatedAt, &op.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan cash operation: %w", err)
		}
		list = append(list, &op)
	}
	return list, rows.Err()
}
