package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caixaflow/pdv-api/internal/domain"
	"github.com/caixaflow/pdv-api/internal/domain/entity"
	"github.com/caixaflow/pdv-api/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementação de ShiftRepository (usável com pool ou tx).
type ShiftRepo struct {
	q Querier
}

// NewShiftRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

const shiftColumns = `id, operator_id, operator_name, start_time, end_time,
	       initial_cash_fund, final_cash_amount, total_sales, status,
	       created_at, updated_at`

// Create persiste um turno recém-aberto. O índice único parcial em
// shifts(status) WHERE status='aberto' transforma a corrida entre dois
// terminais em violação 23505, mapeada para ErrShiftAlreadyOpen.
func (r *ShiftRepo) Create(shift *entity.Shift) error {
	query := `
		INSERT INTO shifts (id, operator_id, operator_name, start_time, initial_cash_fund, total_sales, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		shift.ID, shift.OperatorID, shift.OperatorName, shift.StartTime,
		shift.InitialCashFund, shift.TotalSales, shift.Status,
		shift.CreatedAt, shift.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrShiftAlreadyOpen
		}
		return fmt.Errorf("insert shift: %w", err)
	}
	return nil
}

// GetOpen devolve o turno aberto ou nil se não houver.
func (r *ShiftRepo) GetOpen() (*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE status = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, entity.ShiftStatusOpen))
}

// GetByID obtém um turno por ID.
func (r *ShiftRepo) GetByID(id string) (*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Close grava o fechamento. O UPDATE é condicionado a status=aberto: fechar
// um turno já fechado não afeta nenhuma linha e devolve ErrNoActiveShift.
func (r *ShiftRepo) Close(shift *entity.Shift) error {
	query := `
		UPDATE shifts
		SET end_time          = $2,
		    final_cash_amount = $3,
		    total_sales       = $4,
		    status            = $5,
		    updated_at        = $6
		WHERE id = $1 AND status = $7`
	tag, err := r.q.Exec(context.Background(), query,
		shift.ID, shift.EndTime, shift.FinalCashAmount, shift.TotalSales,
		entity.ShiftStatusClosed, shift.UpdatedAt, entity.ShiftStatusOpen,
	)
	if err != nil {
		return fmt.Errorf("close shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNoActiveShift
	}
	return nil
}

// List devolve o histórico de turnos, mais recentes primeiro.
func (r *ShiftRepo) List(limit, offset int) ([]*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + `
		FROM shifts ORDER BY start_time DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *ShiftRepo) scanOne(row pgx.Row) (*entity.Shift, error) {
	s, err := scanShift(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func scanShift(row pgx.Row) (*entity.Shift, error) {
	var s entity.Shift
	err := row.Scan(
		&s.ID, &s.OperatorID, &s.OperatorName, &s.StartTime, &s.EndTime,
		&s.InitialCashFund, &s.FinalCashAmount, &s.TotalSales, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan shift: %w", err)
	}
	return &s, nil
}
