package repository

import "github.com/caixaflow/pdv-api/internal/domain/entity"

// ShiftRepository define o porto de persistência para turnos de caixa.
// Substitui o "ponteiro global de turno atual": o turno aberto é sempre
// consultado, nunca guardado em estado de módulo.
type ShiftRepository interface {
	Create(shift *entity.Shift) error
	// GetOpen devolve o turno aberto ou nil se não houver.
	GetOpen() (*entity.Shift, error)
	GetByID(id string) (*entity.Shift, error)
	// Close grava end_time, final_cash_amount, total_sales e status=fechado.
	// Deve falhar com domain.ErrNoActiveShift se o turno já estiver fechado
	// (UPDATE condicionado a status=aberto).
	Close(shift *entity.Shift) error
	// List devolve o histórico em ordem decrescente de abertura.
	List(limit, offset int) ([]*entity.Shift, error)
}
