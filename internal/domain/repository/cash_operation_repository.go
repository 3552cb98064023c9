package repository

import "github.com/caixaflow/pdv-api/internal/domain/entity"

// CashOperationRepository define o porto de persistência para sangrias e reforços.
// Append-only: não existe Update nem Delete — correções são lançamentos
// compensatórios, nunca alteração de histórico.
type CashOperationRepository interface {
	Create(op *entity.CashOperation) error
	// ListByShift devolve as operações do turno em ordem de criação.
	ListByShift(shiftID string) ([]*entity.CashOperation, error)
}
